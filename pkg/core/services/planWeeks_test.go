package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sonnenschein-kita/planner/internal/config"
	"github.com/sonnenschein-kita/planner/pkg/db"
)

func weeklyConfig() *config.Config {
	return &config.Config{
		DatabaseURL:  "postgres://localhost/planner_test",
		CenterName:   "Test Center",
		PlanningRule: "FREQ=WEEKLY;BYDAY=MO",
		WeeksAhead:   4,
	}
}

func TestPlanWeeks_CreatesDrafts(t *testing.T) {
	mock := &mockStore{}

	result, err := PlanWeeks(context.Background(), mock, weeklyConfig(), zap.NewNop(), 3)
	require.NoError(t, err)

	require.NotEmpty(t, result.Created)
	assert.Empty(t, result.Skipped)
	assert.Len(t, mock.insertedSchedules, len(result.Created))

	seen := map[time.Time]bool{}
	for _, weekStart := range result.Created {
		assert.Equal(t, time.Monday, weekStart.Weekday())
		assert.False(t, seen[weekStart], "each week is created once")
		seen[weekStart] = true
	}
	for _, schedule := range mock.insertedSchedules {
		assert.Equal(t, "draft", schedule.Status)
		assert.NotEmpty(t, schedule.ID)
	}
}

func TestPlanWeeks_SkipsExistingWeeks(t *testing.T) {
	thisMonday := mondayOf(time.Now().UTC())
	mock := &mockStore{
		schedules: map[string]*db.Schedule{
			thisMonday.Format("2006-01-02"): {ID: "sched-1", WeekStart: thisMonday, Status: "published"},
		},
	}

	result, err := PlanWeeks(context.Background(), mock, weeklyConfig(), zap.NewNop(), 3)
	require.NoError(t, err)

	assert.Contains(t, result.Skipped, thisMonday)
	assert.NotContains(t, result.Created, thisMonday)
}

func TestPlanWeeks_DefaultsToConfiguredHorizon(t *testing.T) {
	mock := &mockStore{}
	cfg := weeklyConfig()

	result, err := PlanWeeks(context.Background(), mock, cfg, zap.NewNop(), 0)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(result.Created), cfg.WeeksAhead)
}

func TestPlanWeeks_RejectsBadRule(t *testing.T) {
	cfg := weeklyConfig()
	cfg.PlanningRule = "FREQ=SOMETIMES"

	_, err := PlanWeeks(context.Background(), &mockStore{}, cfg, zap.NewNop(), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid planning rule")
}
