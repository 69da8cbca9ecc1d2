package planner

import (
	"fmt"

	"github.com/sonnenschein-kita/planner/pkg/core/model"
)

// ValidationInput is a persisted plan plus the entities needed to
// re-derive the hard rules. It is independent of how the plan was
// produced: generated, hand-edited, or both.
type ValidationInput struct {
	Groups     []model.Group
	Employees  []model.Employee
	Attendance []model.Attendance
	Shifts     []Shift // all persisted shifts for the week, manual included
}

// ValidatePlan re-checks a persisted plan against the hard constraints
// and returns human-readable violations. An empty result means the plan
// is fully compliant. This is the authoritative check; generation-time
// warnings are only a heuristic preview.
func ValidatePlan(in ValidationInput) []string {
	attendance := indexAttendance(in.Attendance)

	employees := make(map[string]model.Employee, len(in.Employees))
	for _, e := range in.Employees {
		employees[e.ID] = e
	}

	assigned := make(map[groupDay][]Shift)
	for _, s := range in.Shifts {
		if s.GroupID != "" {
			key := groupDay{Weekday: s.Weekday, GroupID: s.GroupID}
			assigned[key] = append(assigned[key], s)
		}
	}

	var violations []string

	// Understaffed groups, and groups without a lead.
	for weekday := 0; weekday < 5; weekday++ {
		for _, g := range in.Groups {
			required := RequiredStaff(g, attendance, weekday)
			if required <= 0 {
				continue
			}
			groupShifts := assigned[groupDay{Weekday: weekday, GroupID: g.ID}]
			if len(groupShifts) < required {
				violations = append(violations, fmt.Sprintf("%s: %s needs %d staff, only %d assigned.",
					model.WeekdayNames[weekday], g.Name, required, len(groupShifts)))
			}

			hasLead := false
			for _, s := range groupShifts {
				if employees[s.EmployeeID].Role == model.RoleLead {
					hasLead = true
					break
				}
			}
			if !hasLead {
				violations = append(violations, fmt.Sprintf("%s: %s has no lead staff.",
					model.WeekdayNames[weekday], g.Name))
			}
		}
	}

	// Double bookings.
	for weekday := 0; weekday < 5; weekday++ {
		seen := map[string]bool{}
		for _, s := range in.Shifts {
			if s.Weekday != weekday {
				continue
			}
			if seen[s.EmployeeID] {
				name := s.EmployeeID
				if emp, ok := employees[s.EmployeeID]; ok {
					name = emp.FullName()
				}
				violations = append(violations, fmt.Sprintf("%s: %s is assigned more than once.",
					model.WeekdayNames[weekday], name))
			}
			seen[s.EmployeeID] = true
		}
	}

	// Contract hours, with a half-hour tolerance.
	for _, emp := range in.Employees {
		if !emp.IsActive {
			continue
		}
		total := 0.0
		for _, s := range in.Shifts {
			if s.EmployeeID == emp.ID {
				total += ShiftDurationHours(s.Start, s.End, s.BreakMinutes)
			}
		}
		if total > emp.ContractHours+0.5 {
			violations = append(violations, fmt.Sprintf("%s: %.1fh planned, only %.1fh contracted.",
				emp.FullName(), total, emp.ContractHours))
		}
	}

	return violations
}
