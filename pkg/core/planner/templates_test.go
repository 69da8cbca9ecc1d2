package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonnenschein-kita/planner/pkg/core/model"
)

func TestPickTemplate(t *testing.T) {
	fullTime := model.Employee{ContractHours: 40, DaysPerWeek: 5}
	none := model.RestrictionSet{}

	t.Run("part-time staff always get the short shift", func(t *testing.T) {
		partTime := model.Employee{ContractHours: 20, DaysPerWeek: 4}
		assert.Equal(t, TemplateShort, PickTemplate(partTime, none, true, true))
	})

	t.Run("fixed schedule overrides everything", func(t *testing.T) {
		partTime := model.Employee{ContractHours: 20, DaysPerWeek: 4}
		fixed := model.RestrictionSet{FixedStart: "09:00", FixedEnd: "13:00", NoEarly: true}
		got := PickTemplate(partTime, fixed, true, true)
		assert.Equal(t, "09:00", got.Start)
		assert.Equal(t, "13:00", got.End)
		assert.Zero(t, got.BreakMinutes)
	})

	t.Run("no_early diverts to late when late coverage is needed", func(t *testing.T) {
		noEarly := model.RestrictionSet{NoEarly: true}
		assert.Equal(t, TemplateLate, PickTemplate(fullTime, noEarly, true, true))
		assert.Equal(t, TemplateMid, PickTemplate(fullTime, noEarly, true, false))
	})

	t.Run("no_late diverts to early when early coverage is needed", func(t *testing.T) {
		noLate := model.RestrictionSet{NoLate: true}
		assert.Equal(t, TemplateEarly, PickTemplate(fullTime, noLate, true, true))
		assert.Equal(t, TemplateMid, PickTemplate(fullTime, noLate, false, true))
	})

	t.Run("soft preferences only apply to an outstanding need", func(t *testing.T) {
		prefersEarly := model.RestrictionSet{PrefersEarly: true}
		assert.Equal(t, TemplateEarly, PickTemplate(fullTime, prefersEarly, true, false))
		assert.Equal(t, TemplateMid, PickTemplate(fullTime, prefersEarly, false, false))

		prefersLate := model.RestrictionSet{PrefersLate: true}
		assert.Equal(t, TemplateLate, PickTemplate(fullTime, prefersLate, false, true))
	})

	t.Run("coverage need decides for unrestricted staff", func(t *testing.T) {
		assert.Equal(t, TemplateEarly, PickTemplate(fullTime, none, true, true), "early fills before late")
		assert.Equal(t, TemplateLate, PickTemplate(fullTime, none, false, true))
		assert.Equal(t, TemplateMid, PickTemplate(fullTime, none, false, false))
	})
}
