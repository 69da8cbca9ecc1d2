package planner

import (
	"math"
	"sort"
	"time"

	"github.com/sonnenschein-kita/planner/pkg/core/model"
)

// The eligibility predicates are pure functions over already-loaded
// data. The assignment loop and the validator share them so any
// constraint change is made exactly once.

// attendanceIndex resolves (group, weekday) to expected attendance.
type attendanceIndex map[groupDay]model.Attendance

func indexAttendance(attendance []model.Attendance) attendanceIndex {
	idx := make(attendanceIndex, len(attendance))
	for _, a := range attendance {
		idx[groupDay{Weekday: a.Weekday, GroupID: a.GroupID}] = a
	}
	return idx
}

// RequiredStaff returns the minimum headcount for a group on a weekday,
// or zero when no attendance is recorded.
func RequiredStaff(group model.Group, attendance attendanceIndex, weekday int) int {
	att, ok := attendance[groupDay{Weekday: weekday, GroupID: group.ID}]
	if !ok {
		return 0
	}
	return RequiredStaffFor(group, att)
}

// RequiredStaffFor computes ceil(expectedChildren * ratioStaff /
// ratioChildren), or zero when no children are expected. The group's
// ratio must have been validated as positive.
func RequiredStaffFor(group model.Group, att model.Attendance) int {
	if att.ExpectedChildren <= 0 {
		return 0
	}
	return int(math.Ceil(float64(att.ExpectedChildren) * float64(group.RatioStaff) / float64(group.RatioChildren)))
}

// AbsentEmployees expands all absences overlapping the Monday-Friday
// window into per-weekday membership sets.
func AbsentEmployees(weekStart time.Time, absences []model.Absence) map[int]map[string]bool {
	absent := make(map[int]map[string]bool, 5)
	for day := 0; day < 5; day++ {
		absent[day] = map[string]bool{}
	}
	for _, a := range absences {
		for day := 0; day < 5; day++ {
			date := weekStart.AddDate(0, 0, day)
			if !date.Before(a.StartDate) && !date.After(a.EndDate) {
				absent[day][a.EmployeeID] = true
			}
		}
	}
	return absent
}

// IsAvailable reports whether an employee can work at all on a weekday.
func IsAvailable(emp model.Employee, weekday int, restrictions model.RestrictionSet, absent map[string]bool) bool {
	if !emp.IsActive {
		return false
	}
	if absent[emp.ID] {
		return false
	}
	if restrictions.FixedDaysOff[weekday] {
		return false
	}
	return true
}

// CanWorkInGroup reports whether the employee's area qualification,
// narrowed by any only_area restriction, covers the group's area.
func CanWorkInGroup(emp model.Employee, restrictions model.RestrictionSet, group model.Group) bool {
	if restrictions.OnlyArea != "" && restrictions.OnlyArea != group.Area {
		return false
	}
	if emp.Area == model.AreaBoth {
		return true
	}
	return emp.Area == group.Area
}

// ShiftDurationHours computes the paid duration of a shift. Callers must
// have validated the time strings; malformed input counts as zero hours.
func ShiftDurationHours(start, end string, breakMinutes int) float64 {
	startMin, err := model.ClockToMinutes(start)
	if err != nil {
		return 0
	}
	endMin, err := model.ClockToMinutes(end)
	if err != nil {
		return 0
	}
	return math.Max(0, float64(endMin-startMin-breakMinutes)) / 60
}

// WouldExceedConsecutiveDays reports whether adding a candidate weekday
// to the employee's already-assigned days would create a run of
// consecutive days longer than maxConsecutive.
func WouldExceedConsecutiveDays(candidateWeekday int, assignedWeekdays []int, maxConsecutive int) bool {
	days := make(map[int]bool, len(assignedWeekdays)+1)
	for _, d := range assignedWeekdays {
		days[d] = true
	}
	days[candidateWeekday] = true

	sorted := make([]int, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Ints(sorted)

	maxRun, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1]+1 {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 1
		}
	}
	return maxRun > maxConsecutive
}
