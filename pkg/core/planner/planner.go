package planner

import (
	"fmt"
	"sort"

	"github.com/sonnenschein-kita/planner/pkg/core/model"
)

// Generate produces one week's staffing plan from a fully-loaded
// snapshot. It is a single forward pass over Monday-Friday with no
// backtracking: groups that cannot be fully staffed produce warnings,
// never an error. The only error condition is malformed input data.
func Generate(in PlanInput) (*PlanResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	attendance := indexAttendance(in.Attendance)
	absentByDay := AbsentEmployees(in.WeekStart, in.Absences)

	track := newTracker()
	for _, s := range in.ManualShifts {
		track.record(s, ShiftDurationHours(s.Start, s.End, s.BreakMinutes))
		if s.GroupID != "" {
			track.manualFilled[groupDay{Weekday: s.Weekday, GroupID: s.GroupID}]++
		}
	}

	var shifts []Shift
	var warnings []string

	for weekday := 0; weekday < 5; weekday++ {
		needs := dayNeeds(in.Groups, attendance, track, weekday)

		// Rough early/late balance for the day: about a third of the
		// open slots each, decremented as they fill.
		totalNeeded := 0
		for _, n := range needs {
			totalNeeded += n.slots
		}
		earlyTarget := max(1, totalNeeded/3)
		lateTarget := max(1, totalNeeded/3)
		earlyAssigned, lateAssigned := manualEdgeCounts(in.ManualShifts, weekday)

		for _, need := range needs {
			key := groupDay{Weekday: weekday, GroupID: need.group.ID}

			candidates := eligibleCandidates(in, track, absentByDay[weekday], need.group, weekday)
			scored := scoreCandidates(in, track, need.group, key, candidates)

			assigned := pickAssignees(scored, need.slots, leadAlreadyPresent(in, track, key))

			if len(assigned)+track.manualFilled[key] < need.required {
				warnings = append(warnings, fmt.Sprintf("%s: %s needs %d staff, only %d available.",
					model.WeekdayNames[weekday], need.group.Name, need.required,
					len(assigned)+track.manualFilled[key]))
			}

			for _, emp := range assigned {
				tpl := PickTemplate(emp, in.Restrictions[emp.ID],
					earlyAssigned < earlyTarget, lateAssigned < lateTarget)
				if tpl.Start == TemplateEarly.Start {
					earlyAssigned++
				} else if tpl.End == TemplateLate.End {
					lateAssigned++
				}

				shift := Shift{
					EmployeeID:   emp.ID,
					GroupID:      need.group.ID,
					Weekday:      weekday,
					Start:        tpl.Start,
					End:          tpl.End,
					BreakStart:   tpl.BreakStart,
					BreakMinutes: tpl.BreakMinutes,
				}
				track.record(shift, ShiftDurationHours(tpl.Start, tpl.End, tpl.BreakMinutes))
				shifts = append(shifts, shift)
			}
		}
	}

	all := make([]Shift, 0, len(shifts)+len(in.ManualShifts))
	all = append(all, shifts...)
	all = append(all, in.ManualShifts...)

	return &PlanResult{
		Shifts:   shifts,
		Warnings: warnings,
		Scores:   computeScores(in, attendance, all, len(warnings)),
	}, nil
}

// validateInput rejects data that would otherwise silently miscompute
// staffing. Restriction payloads are already typed; this guards the
// numeric and time-string fields.
func validateInput(in PlanInput) error {
	for _, g := range in.Groups {
		if g.RatioStaff <= 0 || g.RatioChildren <= 0 {
			return &model.ConfigError{Msg: fmt.Sprintf("group %s: ratio %d:%d is not positive", g.Name, g.RatioStaff, g.RatioChildren)}
		}
	}
	for _, e := range in.Employees {
		if e.DaysPerWeek < 1 || e.DaysPerWeek > 5 {
			return &model.ConfigError{Msg: fmt.Sprintf("employee %s: days per week %d is not in 1..5", e.FullName(), e.DaysPerWeek)}
		}
		if e.ContractHours < 0 {
			return &model.ConfigError{Msg: fmt.Sprintf("employee %s: negative contract hours", e.FullName())}
		}
	}
	for _, a := range in.Attendance {
		if a.Weekday < 0 || a.Weekday > 4 {
			return &model.ConfigError{Msg: fmt.Sprintf("attendance for group %s: weekday %d is not in 0..4", a.GroupID, a.Weekday)}
		}
	}
	for _, s := range in.ManualShifts {
		if _, err := model.ClockToMinutes(s.Start); err != nil {
			return err
		}
		if _, err := model.ClockToMinutes(s.End); err != nil {
			return err
		}
	}
	return nil
}

type groupNeed struct {
	group    model.Group
	required int // full requirement from attendance and ratio
	slots    int // requirement still open after manual shifts
}

// dayNeeds computes the groups needing staff on a weekday, hardest to
// staff first so scarce lead or area-matched staff are not exhausted on
// easy groups. Ties break on name then ID to keep runs deterministic.
func dayNeeds(groups []model.Group, attendance attendanceIndex, track *tracker, weekday int) []groupNeed {
	var needs []groupNeed
	for _, g := range groups {
		required := RequiredStaff(g, attendance, weekday)
		if required <= 0 {
			continue
		}
		slots := required - track.manualFilled[groupDay{Weekday: weekday, GroupID: g.ID}]
		if slots < 0 {
			slots = 0
		}
		needs = append(needs, groupNeed{group: g, required: required, slots: slots})
	}
	sort.Slice(needs, func(i, j int) bool {
		if needs[i].required != needs[j].required {
			return needs[i].required > needs[j].required
		}
		if needs[i].group.Name != needs[j].group.Name {
			return needs[i].group.Name < needs[j].group.Name
		}
		return needs[i].group.ID < needs[j].group.ID
	})
	return needs
}

// eligibleCandidates builds the pool of employees who may take a shift
// in the group on the given weekday.
func eligibleCandidates(in PlanInput, track *tracker, absent map[string]bool, group model.Group, weekday int) []model.Employee {
	var pool []model.Employee
	for _, emp := range in.Employees {
		restrictions := in.Restrictions[emp.ID]

		if track.assignedByDay[weekday][emp.ID] {
			continue
		}
		if !IsAvailable(emp, weekday, restrictions, absent) {
			continue
		}
		if !CanWorkInGroup(emp, restrictions, group) {
			continue
		}
		if track.days[emp.ID] >= emp.DaysPerWeek {
			continue
		}

		// Rough contract-hour check: another typical day must fit.
		dailyTarget := emp.ContractHours / float64(emp.DaysPerWeek)
		if track.hours[emp.ID]+dailyTarget > emp.ContractHours+1 {
			continue
		}

		if mc := restrictions.MaxConsecutiveDays; mc > 0 &&
			WouldExceedConsecutiveDays(weekday, track.weekdays[emp.ID], mc) {
			continue
		}

		pool = append(pool, emp)
	}
	return pool
}

type scoredCandidate struct {
	score float64
	emp   model.Employee
}

// scoreCandidates ranks the pool for one group, best first. Ties break
// on employee ID so generation is deterministic for identical input.
func scoreCandidates(in PlanInput, track *tracker, group model.Group, key groupDay, pool []model.Employee) []scoredCandidate {
	scored := make([]scoredCandidate, 0, len(pool))
	for _, emp := range pool {
		scored = append(scored, scoredCandidate{
			score: scoreCandidate(emp, in.Restrictions[emp.ID], group, track.hours[emp.ID], track.groupAssigned[key]),
			emp:   emp,
		})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].emp.ID < scored[j].emp.ID
	})
	return scored
}

// scoreCandidate rates how suitable an employee is for a group on a day.
func scoreCandidate(emp model.Employee, restrictions model.RestrictionSet, group model.Group, hoursSoFar float64, groupAssigned map[string]bool) float64 {
	score := 0.0

	if emp.Area == group.Area {
		score += WeightAreaExact
	} else if emp.Area == model.AreaBoth {
		score += WeightAreaBoth
	}

	if emp.Role == model.RoleLead {
		score += WeightLeadRole
	}

	// Under-utilized staff first.
	utilization := 1.0
	if emp.ContractHours > 0 {
		utilization = hoursSoFar / emp.ContractHours
	}
	if bonus := WeightFairness * (1 - utilization); bonus > 0 {
		score += bonus
	}

	// Keep employees near colleagues they prefer, counted against this
	// group's already-placed set only.
	for _, colleague := range restrictions.PreferredColleagues {
		if groupAssigned[colleague] {
			score += WeightColleague
		}
	}

	return score
}

// pickAssignees fills up to slots from the ranked pool. Unless a lead is
// already present (for instance via a manual shift), the best-ranked
// lead candidate is taken first.
func pickAssignees(scored []scoredCandidate, slots int, leadPresent bool) []model.Employee {
	if slots <= 0 {
		return nil
	}

	var assigned []model.Employee
	if !leadPresent {
		for i, c := range scored {
			if c.emp.Role == model.RoleLead {
				assigned = append(assigned, c.emp)
				scored = append(scored[:i:i], scored[i+1:]...)
				break
			}
		}
	}
	for _, c := range scored {
		if len(assigned) >= slots {
			break
		}
		assigned = append(assigned, c.emp)
	}
	return assigned
}

// leadAlreadyPresent reports whether the group already has a lead-role
// assignee that day.
func leadAlreadyPresent(in PlanInput, track *tracker, key groupDay) bool {
	assigned := track.groupAssigned[key]
	if len(assigned) == 0 {
		return false
	}
	for _, emp := range in.Employees {
		if assigned[emp.ID] && emp.Role == model.RoleLead {
			return true
		}
	}
	return false
}

// manualEdgeCounts seeds the day's early/late counters from manual
// shifts so generated shifts balance around them.
func manualEdgeCounts(manual []Shift, weekday int) (early, late int) {
	for _, s := range manual {
		if s.Weekday != weekday {
			continue
		}
		if s.Start == TemplateEarly.Start {
			early++
		} else if s.End == TemplateLate.End {
			late++
		}
	}
	return early, late
}
