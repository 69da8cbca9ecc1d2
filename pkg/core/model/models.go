package model

import "time"

// Role is an employee's staff role. Every staffed group needs at least
// one lead present when staffing is required.
type Role string

const (
	RoleLead      Role = "lead"
	RoleAssistant Role = "assistant"
)

func (r Role) IsValid() bool {
	return r == RoleLead || r == RoleAssistant
}

// Area is a classroom category. Employees may be qualified for one area
// or for both.
type Area string

const (
	AreaInfant    Area = "infant"
	AreaPreschool Area = "preschool"
	AreaBoth      Area = "both"
)

func (a Area) IsValid() bool {
	return a == AreaInfant || a == AreaPreschool || a == AreaBoth
}

// ScheduleStatus is the lifecycle state of a week's schedule. Only draft
// schedules may be mutated by the planner.
type ScheduleStatus string

const (
	StatusDraft     ScheduleStatus = "draft"
	StatusPublished ScheduleStatus = "published"
	StatusArchived  ScheduleStatus = "archived"
)

// AbsenceType categorises an employee absence.
type AbsenceType string

const (
	AbsenceVacation AbsenceType = "vacation"
	AbsenceSick     AbsenceType = "sick"
	AbsenceTraining AbsenceType = "training"
	AbsenceOther    AbsenceType = "other"
)

// WeekdayNames are the short names used in warnings and violations,
// indexed by weekday (0 = Monday .. 4 = Friday).
var WeekdayNames = [5]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// CenterSettings holds the center-wide opening hours and core-presence
// window as HH:MM strings. One row per center.
type CenterSettings struct {
	ID        string
	Name      string
	OpenTime  string
	CloseTime string
	CoreStart string
	CoreEnd   string
}

// Group represents a classroom group
type Group struct {
	ID            string
	Name          string
	Area          Area
	MinChildren   int
	MaxChildren   int
	RatioStaff    int
	RatioChildren int
	IsActive      bool
}

// Attendance is the expected child count for a group on a weekday,
// with arrival and departure times.
type Attendance struct {
	GroupID          string
	Weekday          int // 0 = Monday .. 4 = Friday
	ExpectedChildren int
	ArrivalTime      string
	DepartureTime    string
}

// Employee represents a staff member
type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Role          Role
	Area          Area
	ContractHours float64
	DaysPerWeek   int
	IsActive      bool
}

// FullName returns the employee's display name
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Absence marks an employee unavailable on every day in [StartDate, EndDate].
// Overlapping absences for the same employee are allowed.
type Absence struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Type       AbsenceType
	Note       string
}

// Schedule is one week's plan. WeekStart is unique per schedule.
type Schedule struct {
	ID              string
	WeekStart       time.Time
	Status          ScheduleStatus
	ScoreCoverage   int
	ScoreFairness   int
	ScorePreference int
	ScoreCompliance int
	PublishedAt     *time.Time
	CreatedAt       time.Time
}
