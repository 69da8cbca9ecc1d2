package planner

import "math"

// computeScores rates a completed plan (generated plus manual shifts)
// along the four quality dimensions. Shifts are indexed once up front
// rather than re-scanned per formula.
func computeScores(in PlanInput, attendance attendanceIndex, shifts []Shift, warningCount int) Scores {
	byEmployee := make(map[string][]Shift)
	filled := make(map[groupDay]int)
	for _, s := range shifts {
		byEmployee[s.EmployeeID] = append(byEmployee[s.EmployeeID], s)
		if s.GroupID != "" {
			filled[groupDay{Weekday: s.Weekday, GroupID: s.GroupID}]++
		}
	}

	totalRequired, totalFilled := 0, 0
	for weekday := 0; weekday < 5; weekday++ {
		for _, g := range in.Groups {
			required := RequiredStaff(g, attendance, weekday)
			if required <= 0 {
				continue
			}
			totalRequired += required
			totalFilled += min(filled[groupDay{Weekday: weekday, GroupID: g.ID}], required)
		}
	}

	return Scores{
		Coverage:   coverageScore(totalFilled, totalRequired),
		Fairness:   fairnessScore(in, byEmployee),
		Preference: preferenceScore(in, byEmployee),
		Compliance: complianceScore(warningCount, totalRequired, len(in.Employees)),
	}
}

func coverageScore(totalFilled, totalRequired int) int {
	if totalRequired <= 0 {
		return 100
	}
	return int(math.Round(100 * float64(totalFilled) / float64(totalRequired)))
}

// fairnessScore measures how evenly assigned hours track contract hours:
// the average of |1 - hours/contract| across staff, inverted onto 0-100.
func fairnessScore(in PlanInput, byEmployee map[string][]Shift) int {
	totalDeviation, counted := 0.0, 0
	for _, emp := range in.Employees {
		if emp.ContractHours <= 0 {
			continue
		}
		hours := 0.0
		for _, s := range byEmployee[emp.ID] {
			hours += ShiftDurationHours(s.Start, s.End, s.BreakMinutes)
		}
		totalDeviation += math.Abs(1 - hours/emp.ContractHours)
		counted++
	}
	if counted == 0 {
		return 100
	}
	score := int(math.Round(100 * (1 - totalDeviation/float64(counted))))
	return max(0, score)
}

// preferenceScore is the satisfied fraction of prefers_early,
// prefers_late and prefers_colleague restrictions. Colleague preference
// counts only when both employees share the same group on the same day.
func preferenceScore(in PlanInput, byEmployee map[string][]Shift) int {
	total, satisfied := 0, 0
	for _, emp := range in.Employees {
		restrictions := in.Restrictions[emp.ID]
		own := byEmployee[emp.ID]

		if restrictions.PrefersEarly {
			total++
			for _, s := range own {
				if s.Start == TemplateEarly.Start {
					satisfied++
					break
				}
			}
		}
		if restrictions.PrefersLate {
			total++
			for _, s := range own {
				if s.End == TemplateLate.End {
					satisfied++
					break
				}
			}
		}
		for _, colleague := range restrictions.PreferredColleagues {
			total++
			if sharesGroupOnAnyDay(own, byEmployee[colleague]) {
				satisfied++
			}
		}
	}
	if total == 0 {
		return 100
	}
	return int(math.Round(100 * float64(satisfied) / float64(total)))
}

func sharesGroupOnAnyDay(a, b []Shift) bool {
	seen := make(map[groupDay]bool, len(a))
	for _, s := range a {
		if s.GroupID != "" {
			seen[groupDay{Weekday: s.Weekday, GroupID: s.GroupID}] = true
		}
	}
	for _, s := range b {
		if s.GroupID != "" && seen[groupDay{Weekday: s.Weekday, GroupID: s.GroupID}] {
			return true
		}
	}
	return false
}

// complianceScore is a coarse generation-time proxy for checks passed,
// derived from the warning count. The authoritative hard-constraint
// check is ValidatePlan.
func complianceScore(warningCount, totalRequired, employeeCount int) int {
	checks := max(1, totalRequired+employeeCount)
	score := int(math.Round(100 * (1 - float64(warningCount)/float64(checks))))
	return max(0, score)
}
