package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonnenschein-kita/planner/pkg/core/model"
)

func TestComputeScores_Coverage(t *testing.T) {
	in := PlanInput{
		Groups: []model.Group{seaStars()},
		Employees: []model.Employee{
			fullTimer("anna", model.RoleLead, model.AreaInfant),
		},
		Restrictions: map[string]model.RestrictionSet{},
	}
	attendance := indexAttendance([]model.Attendance{
		{GroupID: "g-sea", Weekday: 0, ExpectedChildren: 8}, // needs 2
	})

	t.Run("half filled", func(t *testing.T) {
		shifts := []Shift{
			{EmployeeID: "anna", GroupID: "g-sea", Weekday: 0, Start: "08:00", End: "16:00", BreakMinutes: 30},
		}
		scores := computeScores(in, attendance, shifts, 0)
		assert.Equal(t, 50, scores.Coverage)
	})

	t.Run("overfilling does not exceed 100", func(t *testing.T) {
		shifts := []Shift{
			{EmployeeID: "anna", GroupID: "g-sea", Weekday: 0, Start: "07:00", End: "15:30", BreakMinutes: 30},
			{EmployeeID: "ben", GroupID: "g-sea", Weekday: 0, Start: "08:00", End: "16:00", BreakMinutes: 30},
			{EmployeeID: "clara", GroupID: "g-sea", Weekday: 0, Start: "08:30", End: "17:00", BreakMinutes: 30},
		}
		scores := computeScores(in, attendance, shifts, 0)
		assert.Equal(t, 100, scores.Coverage)
	})

	t.Run("no requirement scores 100", func(t *testing.T) {
		scores := computeScores(in, indexAttendance(nil), nil, 0)
		assert.Equal(t, 100, scores.Coverage)
	})
}

func TestFairnessScore(t *testing.T) {
	t.Run("deviation from contract hours", func(t *testing.T) {
		emp := fullTimer("anna", model.RoleLead, model.AreaInfant)
		emp.ContractHours = 8
		emp.DaysPerWeek = 1
		in := PlanInput{Employees: []model.Employee{emp}}

		// One 7.5h mid shift against an 8h contract deviates by 6.25%.
		byEmployee := map[string][]Shift{
			"anna": {{EmployeeID: "anna", Start: "08:00", End: "16:00", BreakMinutes: 30}},
		}
		assert.Equal(t, 94, fairnessScore(in, byEmployee))
	})

	t.Run("exact match is 100", func(t *testing.T) {
		emp := fullTimer("anna", model.RoleLead, model.AreaInfant)
		emp.ContractHours = 8
		in := PlanInput{Employees: []model.Employee{emp}}

		byEmployee := map[string][]Shift{
			"anna": {{EmployeeID: "anna", Start: "07:00", End: "15:30", BreakMinutes: 30}},
		}
		assert.Equal(t, 100, fairnessScore(in, byEmployee))
	})

	t.Run("no contracted staff is 100", func(t *testing.T) {
		assert.Equal(t, 100, fairnessScore(PlanInput{}, nil))
	})

	t.Run("unassigned staff floor at zero not below", func(t *testing.T) {
		a := fullTimer("anna", model.RoleLead, model.AreaInfant)
		b := fullTimer("ben", model.RoleAssistant, model.AreaInfant)
		in := PlanInput{Employees: []model.Employee{a, b}}

		// Both fully unassigned: average deviation 1.0 exactly.
		assert.Equal(t, 0, fairnessScore(in, map[string][]Shift{}))
	})
}

func TestPreferenceScore(t *testing.T) {
	anna := fullTimer("anna", model.RoleLead, model.AreaInfant)
	ben := fullTimer("ben", model.RoleAssistant, model.AreaInfant)

	t.Run("no preferences is 100", func(t *testing.T) {
		in := PlanInput{
			Employees:    []model.Employee{anna},
			Restrictions: map[string]model.RestrictionSet{},
		}
		assert.Equal(t, 100, preferenceScore(in, nil))
	})

	t.Run("early and late shift preferences", func(t *testing.T) {
		in := PlanInput{
			Employees: []model.Employee{anna, ben},
			Restrictions: map[string]model.RestrictionSet{
				"anna": {PrefersEarly: true},
				"ben":  {PrefersLate: true},
			},
		}
		byEmployee := map[string][]Shift{
			"anna": {{EmployeeID: "anna", Weekday: 0, Start: "07:00", End: "15:30"}},
			"ben":  {{EmployeeID: "ben", Weekday: 0, Start: "08:00", End: "16:00"}},
		}
		// anna got an early shift, ben never got a late one.
		assert.Equal(t, 50, preferenceScore(in, byEmployee))
	})

	t.Run("colleague preference needs a shared group and day", func(t *testing.T) {
		in := PlanInput{
			Employees: []model.Employee{anna, ben},
			Restrictions: map[string]model.RestrictionSet{
				"anna": {PreferredColleagues: []string{"ben"}},
			},
		}

		sameGroupSameDay := map[string][]Shift{
			"anna": {{EmployeeID: "anna", GroupID: "g-sea", Weekday: 2}},
			"ben":  {{EmployeeID: "ben", GroupID: "g-sea", Weekday: 2}},
		}
		assert.Equal(t, 100, preferenceScore(in, sameGroupSameDay))

		differentGroups := map[string][]Shift{
			"anna": {{EmployeeID: "anna", GroupID: "g-sea", Weekday: 2}},
			"ben":  {{EmployeeID: "ben", GroupID: "g-dol", Weekday: 2}},
		}
		assert.Equal(t, 0, preferenceScore(in, differentGroups))

		differentDays := map[string][]Shift{
			"anna": {{EmployeeID: "anna", GroupID: "g-sea", Weekday: 2}},
			"ben":  {{EmployeeID: "ben", GroupID: "g-sea", Weekday: 3}},
		}
		assert.Equal(t, 0, preferenceScore(in, differentDays))
	})
}

func TestComplianceScore(t *testing.T) {
	assert.Equal(t, 100, complianceScore(0, 10, 3))
	assert.Equal(t, 67, complianceScore(1, 2, 1), "one warning against three checks")
	assert.Equal(t, 0, complianceScore(5, 2, 1), "more warnings than checks floors at zero")
	assert.Equal(t, 100, complianceScore(0, 0, 0))
}
