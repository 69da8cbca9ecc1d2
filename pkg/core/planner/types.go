package planner

import (
	"time"

	"github.com/sonnenschein-kita/planner/pkg/core/model"
)

// Shift is one employee's assignment to a group on one weekday. The
// planner, scorer and validator all consume this shape.
type Shift struct {
	EmployeeID   string
	GroupID      string
	Weekday      int    // 0 = Monday .. 4 = Friday
	Start        string // HH:MM
	End          string // HH:MM
	BreakStart   string // empty when the shift has no break
	BreakMinutes int
	Manual       bool
}

// PlanInput is the fully-loaded snapshot the planner works from. It is
// never mutated; all running state lives in a per-call tracker.
type PlanInput struct {
	Groups       []model.Group    // active groups only
	Employees    []model.Employee // active employees only
	Restrictions map[string]model.RestrictionSet
	Attendance   []model.Attendance
	Absences     []model.Absence
	WeekStart    time.Time

	// ManualShifts are hand-entered shifts already persisted for the
	// week. The planner must never assign their employees elsewhere on
	// the same day, and they count toward their group's requirement.
	ManualShifts []Shift
}

// Scores are the four plan quality metrics, each in [0, 100].
type Scores struct {
	Coverage   int
	Fairness   int
	Preference int
	Compliance int
}

// PlanResult is the outcome of one generation run. Shifts contains only
// newly generated (non-manual) assignments. The planner never fails for
// infeasibility; shortfalls are reported as warnings instead.
type PlanResult struct {
	Shifts   []Shift
	Warnings []string
	Scores   Scores
}

// groupDay keys per-day, per-group state.
type groupDay struct {
	Weekday int
	GroupID string
}

// tracker accumulates per-employee load across the weekday loop. One map
// per metric, keyed by employee ID, threaded through the whole run.
type tracker struct {
	hours         map[string]float64
	days          map[string]int
	weekdays      map[string][]int
	assignedByDay [5]map[string]bool
	groupAssigned map[groupDay]map[string]bool
	manualFilled  map[groupDay]int
}

func newTracker() *tracker {
	t := &tracker{
		hours:         map[string]float64{},
		days:          map[string]int{},
		weekdays:      map[string][]int{},
		groupAssigned: map[groupDay]map[string]bool{},
		manualFilled:  map[groupDay]int{},
	}
	for day := range t.assignedByDay {
		t.assignedByDay[day] = map[string]bool{}
	}
	return t
}

// record books a shift against the employee's running counters.
func (t *tracker) record(shift Shift, hours float64) {
	id := shift.EmployeeID
	t.hours[id] += hours
	t.days[id]++
	t.weekdays[id] = append(t.weekdays[id], shift.Weekday)
	t.assignedByDay[shift.Weekday][id] = true

	key := groupDay{Weekday: shift.Weekday, GroupID: shift.GroupID}
	if t.groupAssigned[key] == nil {
		t.groupAssigned[key] = map[string]bool{}
	}
	t.groupAssigned[key][id] = true
}
