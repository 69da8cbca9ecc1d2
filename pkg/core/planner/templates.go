package planner

import "github.com/sonnenschein-kita/planner/pkg/core/model"

// Template is a fixed start/end/break shift shape.
type Template struct {
	Name         string
	Start        string
	End          string
	BreakStart   string // empty when the template has no break
	BreakMinutes int
}

var (
	TemplateEarly = Template{Name: "early", Start: "07:00", End: "15:30", BreakStart: "11:30", BreakMinutes: 30}
	TemplateMid   = Template{Name: "mid", Start: "08:00", End: "16:00", BreakStart: "12:00", BreakMinutes: 30}
	TemplateLate  = Template{Name: "late", Start: "08:30", End: "17:00", BreakStart: "12:30", BreakMinutes: 30}

	// TemplateShort is for part-time staff; under six hours no break is
	// required.
	TemplateShort = Template{Name: "short", Start: "08:00", End: "14:00"}
)

// partTimeDailyHours is the daily-target threshold below which an
// employee always receives the short template.
const partTimeDailyHours = 6.5

// PickTemplate chooses a shift template for an employee given the day's
// outstanding early/late coverage needs. Precedence: fixed contractual
// schedule, part-time short shift, hard shift-time restrictions, soft
// preferences, outstanding coverage need, then mid.
func PickTemplate(emp model.Employee, restrictions model.RestrictionSet, needsEarly, needsLate bool) Template {
	if restrictions.FixedStart != "" {
		return Template{Name: "fixed", Start: restrictions.FixedStart, End: restrictions.FixedEnd}
	}

	if emp.DaysPerWeek > 0 && emp.ContractHours/float64(emp.DaysPerWeek) < partTimeDailyHours {
		return TemplateShort
	}

	// Hard restrictions win over coverage needs.
	if restrictions.NoEarly {
		if needsLate {
			return TemplateLate
		}
		return TemplateMid
	}
	if restrictions.NoLate {
		if needsEarly {
			return TemplateEarly
		}
		return TemplateMid
	}

	// Soft preferences, when they line up with an outstanding need.
	if restrictions.PrefersEarly && needsEarly {
		return TemplateEarly
	}
	if restrictions.PrefersLate && needsLate {
		return TemplateLate
	}

	if needsEarly {
		return TemplateEarly
	}
	if needsLate {
		return TemplateLate
	}
	return TemplateMid
}
