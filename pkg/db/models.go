package db

import "time"

// CenterSettings represents the center settings database record
type CenterSettings struct {
	ID        string
	Name      string
	OpenTime  string
	CloseTime string
	CoreStart string
	CoreEnd   string
}

// Group represents a classroom group database record
type Group struct {
	ID            string
	Name          string
	Area          string
	MinChildren   int
	MaxChildren   int
	RatioStaff    int
	RatioChildren int
	IsActive      bool
}

// Attendance represents an expected-attendance database record
type Attendance struct {
	ID               string
	GroupID          string
	Weekday          int
	ExpectedChildren int
	ArrivalTime      string
	DepartureTime    string
}

// Employee represents an employee database record
type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Role          string
	Area          string
	ContractHours float64
	DaysPerWeek   int
	IsActive      bool
}

// Restriction represents a raw employee restriction record. Kind and
// Value are parsed into typed restrictions at snapshot load time.
type Restriction struct {
	ID         string
	EmployeeID string
	Kind       string
	Value      string
}

// Absence represents an absence database record
type Absence struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Kind       string
	Note       string
}

// Schedule represents a weekly schedule database record
type Schedule struct {
	ID              string
	WeekStart       time.Time
	Status          string
	ScoreCoverage   int
	ScoreFairness   int
	ScorePreference int
	ScoreCompliance int
	PublishedAt     *time.Time
	CreatedAt       time.Time
}

// Shift represents a shift database record
type Shift struct {
	ID           string
	ScheduleID   string
	EmployeeID   string
	GroupID      string // empty for group-less shifts
	Weekday      int
	StartTime    string
	EndTime      string
	BreakStart   string // empty when the shift has no break
	BreakMinutes int
	IsManual     bool
}

// ScheduleScores carries the four plan quality scores written back to a
// schedule when a generated plan is applied.
type ScheduleScores struct {
	Coverage   int
	Fairness   int
	Preference int
	Compliance int
}
