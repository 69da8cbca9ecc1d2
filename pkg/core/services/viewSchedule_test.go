package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sonnenschein-kita/planner/pkg/db"
)

func TestViewSchedule_BuildsWeeklySummary(t *testing.T) {
	mock := lifecycleStore(t, true)
	mock.center = &db.CenterSettings{ID: "c1", Name: "Kita Sonnenschein", OpenTime: "07:00", CloseTime: "17:00"}

	result, err := ViewSchedule(context.Background(), mock, zap.NewNop(), testWeek(t))
	require.NoError(t, err)

	assert.Equal(t, "sched-1", result.Schedule.ID)
	require.NotNil(t, result.Center)
	assert.Equal(t, "Kita Sonnenschein", result.Center.Name)
	require.Len(t, result.Days, 5)

	monday := result.Days[0]
	assert.Equal(t, "Mon", monday.Weekday)
	require.Len(t, monday.Groups, 1)

	group := monday.Groups[0]
	assert.Equal(t, "Sea Stars", group.GroupName)
	assert.Equal(t, 2, group.Required)
	require.Len(t, group.Assignments, 2)
	assert.Equal(t, "Anna Keller", group.Assignments[0].EmployeeName)
	assert.Equal(t, "07:00", group.Assignments[0].Start)

	// Days without attendance or shifts stay empty.
	assert.Empty(t, result.Days[1].Groups)
}

func TestViewSchedule_MissingSchedule(t *testing.T) {
	mock := lifecycleStore(t, true)

	_, err := ViewSchedule(context.Background(), mock, zap.NewNop(), testWeek(t).AddDate(0, 0, 7))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schedule exists")
}

func TestListSchedules_NewestFirst(t *testing.T) {
	weekStart := testWeek(t)
	store := lifecycleStore(t, false)
	store.schedules[weekStart.AddDate(0, 0, 7).Format("2006-01-02")] = &db.Schedule{
		ID: "sched-2", WeekStart: weekStart.AddDate(0, 0, 7), Status: "draft",
	}

	schedules, err := ListSchedules(context.Background(), store, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, schedules, 2)
	assert.Equal(t, "sched-2", schedules[0].ID)
	assert.Equal(t, "sched-1", schedules[1].ID)
}

func TestListEmployees(t *testing.T) {
	store := lifecycleStore(t, false)
	store.restrictions = []db.Restriction{
		{ID: "r1", EmployeeID: "anna", Kind: "no_early_shift"},
		{ID: "r2", EmployeeID: "anna", Kind: "max_consecutive_days", Value: "3"},
	}

	listings, err := ListEmployees(context.Background(), store, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "Anna Keller", listings[0].Employee.FullName())
	assert.Equal(t, []string{"no_early_shift", "max_consecutive_days=3"}, listings[0].Restrictions)
	assert.Empty(t, listings[1].Restrictions)
}
