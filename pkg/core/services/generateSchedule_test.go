package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sonnenschein-kita/planner/pkg/db"
)

// mockStore implements a test double for the service store interfaces
type mockStore struct {
	center       *db.CenterSettings
	groups       []db.Group
	attendance   []db.Attendance
	employees    []db.Employee
	restrictions []db.Restriction
	absences     []db.Absence
	schedules    map[string]*db.Schedule // keyed by week start date
	shifts       map[string][]db.Shift   // keyed by schedule ID

	insertedSchedules []*db.Schedule
	appliedScheduleID string
	appliedShifts     []db.Shift
	appliedScores     db.ScheduleScores
	statusUpdates     []string

	getScheduleErr error
	insertErr      error
	applyErr       error
}

func (m *mockStore) GetCenterSettings(ctx context.Context) (*db.CenterSettings, error) {
	return m.center, nil
}

func (m *mockStore) GetGroups(ctx context.Context) ([]db.Group, error) {
	return m.groups, nil
}

func (m *mockStore) GetAttendance(ctx context.Context) ([]db.Attendance, error) {
	return m.attendance, nil
}

func (m *mockStore) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	return m.employees, nil
}

func (m *mockStore) GetRestrictions(ctx context.Context) ([]db.Restriction, error) {
	return m.restrictions, nil
}

func (m *mockStore) GetAbsencesOverlapping(ctx context.Context, start, end time.Time) ([]db.Absence, error) {
	return m.absences, nil
}

func (m *mockStore) GetSchedules(ctx context.Context) ([]db.Schedule, error) {
	var all []db.Schedule
	for _, s := range m.schedules {
		all = append(all, *s)
	}
	return all, nil
}

func (m *mockStore) GetScheduleByWeek(ctx context.Context, weekStart time.Time) (*db.Schedule, error) {
	if m.getScheduleErr != nil {
		return nil, m.getScheduleErr
	}
	return m.schedules[weekStart.Format("2006-01-02")], nil
}

func (m *mockStore) InsertSchedule(ctx context.Context, schedule *db.Schedule) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if m.schedules == nil {
		m.schedules = map[string]*db.Schedule{}
	}
	m.schedules[schedule.WeekStart.Format("2006-01-02")] = schedule
	m.insertedSchedules = append(m.insertedSchedules, schedule)
	return nil
}

func (m *mockStore) GetShifts(ctx context.Context, scheduleID string) ([]db.Shift, error) {
	return m.shifts[scheduleID], nil
}

func (m *mockStore) ApplyPlan(ctx context.Context, scheduleID string, shifts []db.Shift, scores db.ScheduleScores) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	m.appliedScheduleID = scheduleID
	m.appliedShifts = shifts
	m.appliedScores = scores
	return nil
}

func (m *mockStore) UpdateScheduleStatus(ctx context.Context, scheduleID, status string, publishedAt *time.Time) error {
	m.statusUpdates = append(m.statusUpdates, scheduleID+":"+status)
	for _, s := range m.schedules {
		if s.ID == scheduleID {
			s.Status = status
			s.PublishedAt = publishedAt
		}
	}
	return nil
}

func testWeek(t *testing.T) time.Time {
	t.Helper()
	weekStart, err := time.Parse("2006-01-02", "2026-08-24") // a Monday
	require.NoError(t, err)
	return weekStart
}

// staffedStore returns a store with one group at 1:4 needing two staff
// every weekday and two employees covering it.
func staffedStore() *mockStore {
	attendance := make([]db.Attendance, 0, 5)
	for weekday := 0; weekday < 5; weekday++ {
		attendance = append(attendance, db.Attendance{
			GroupID: "g-sea", Weekday: weekday, ExpectedChildren: 8,
		})
	}
	return &mockStore{
		groups: []db.Group{
			{ID: "g-sea", Name: "Sea Stars", Area: "infant", RatioStaff: 1, RatioChildren: 4, IsActive: true},
		},
		attendance: attendance,
		employees: []db.Employee{
			{ID: "anna", FirstName: "Anna", LastName: "Keller", Role: "lead", Area: "infant", ContractHours: 40, DaysPerWeek: 5, IsActive: true},
			{ID: "ben", FirstName: "Ben", LastName: "Roth", Role: "assistant", Area: "infant", ContractHours: 40, DaysPerWeek: 5, IsActive: true},
		},
	}
}

func TestGenerateSchedule_CreatesDraftAndApplies(t *testing.T) {
	mock := staffedStore()
	logger := zap.NewNop()
	ctx := context.Background()
	weekStart := testWeek(t)

	result, err := GenerateSchedule(ctx, mock, logger, weekStart, false)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.ScheduleCreated)
	assert.True(t, result.Applied)
	assert.NotEmpty(t, result.ScheduleID)
	require.Len(t, mock.insertedSchedules, 1)
	assert.Equal(t, "draft", mock.insertedSchedules[0].Status)

	assert.Equal(t, result.ScheduleID, mock.appliedScheduleID)
	assert.Len(t, mock.appliedShifts, 10, "two staff on each of five days")
	for _, s := range mock.appliedShifts {
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, result.ScheduleID, s.ScheduleID)
		assert.False(t, s.IsManual)
	}
	assert.Equal(t, result.Scores.Coverage, mock.appliedScores.Coverage)
	assert.Empty(t, result.Warnings)
}

func TestGenerateSchedule_NormalizesToMonday(t *testing.T) {
	mock := staffedStore()
	wednesday := testWeek(t).AddDate(0, 0, 2)

	result, err := GenerateSchedule(context.Background(), mock, zap.NewNop(), wednesday, false)
	require.NoError(t, err)

	assert.Equal(t, testWeek(t), result.WeekStart)
}

func TestGenerateSchedule_DryRunPersistsNothing(t *testing.T) {
	mock := staffedStore()

	result, err := GenerateSchedule(context.Background(), mock, zap.NewNop(), testWeek(t), true)
	require.NoError(t, err)

	assert.True(t, result.ScheduleCreated)
	assert.False(t, result.Applied)
	assert.Len(t, result.Shifts, 10, "the plan is still computed")
	assert.Empty(t, mock.insertedSchedules)
	assert.Empty(t, mock.appliedScheduleID)
}

func TestGenerateSchedule_RefusesPublishedSchedule(t *testing.T) {
	mock := staffedStore()
	weekStart := testWeek(t)
	mock.schedules = map[string]*db.Schedule{
		weekStart.Format("2006-01-02"): {ID: "sched-1", WeekStart: weekStart, Status: "published"},
	}

	_, err := GenerateSchedule(context.Background(), mock, zap.NewNop(), weekStart, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only draft schedules can be regenerated")
}

func TestGenerateSchedule_PreservesManualShifts(t *testing.T) {
	mock := staffedStore()
	weekStart := testWeek(t)
	mock.schedules = map[string]*db.Schedule{
		weekStart.Format("2006-01-02"): {ID: "sched-1", WeekStart: weekStart, Status: "draft"},
	}
	mock.shifts = map[string][]db.Shift{
		"sched-1": {
			{ID: "manual-1", ScheduleID: "sched-1", EmployeeID: "anna", GroupID: "g-sea",
				Weekday: 0, StartTime: "08:00", EndTime: "16:00", BreakStart: "12:00", BreakMinutes: 30, IsManual: true},
			{ID: "old-1", ScheduleID: "sched-1", EmployeeID: "ben", GroupID: "g-sea",
				Weekday: 0, StartTime: "08:00", EndTime: "16:00", BreakStart: "12:00", BreakMinutes: 30, IsManual: false},
		},
	}

	result, err := GenerateSchedule(context.Background(), mock, zap.NewNop(), weekStart, false)
	require.NoError(t, err)

	assert.Equal(t, 1, result.ManualShifts)
	for _, s := range result.Shifts {
		if s.Weekday == 0 {
			assert.NotEqual(t, "anna", s.EmployeeID, "the manually placed employee keeps her shift")
		}
	}
	// Applied records contain only regenerated shifts; the store keeps
	// manual rows and drops stale generated ones.
	for _, s := range mock.appliedShifts {
		assert.NotEqual(t, "manual-1", s.ID)
	}
}

func TestGenerateSchedule_StoreErrors(t *testing.T) {
	t.Run("schedule lookup fails", func(t *testing.T) {
		mock := staffedStore()
		mock.getScheduleErr = errors.New("connection refused")

		_, err := GenerateSchedule(context.Background(), mock, zap.NewNop(), testWeek(t), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch schedule")
	})

	t.Run("apply fails", func(t *testing.T) {
		mock := staffedStore()
		mock.applyErr = errors.New("deadlock detected")

		_, err := GenerateSchedule(context.Background(), mock, zap.NewNop(), testWeek(t), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to apply plan")
	})
}

func TestGenerateSchedule_BadRestrictionData(t *testing.T) {
	mock := staffedStore()
	mock.restrictions = []db.Restriction{
		{ID: "r1", EmployeeID: "anna", Kind: "fixed_day_off", Value: "Saturday"},
	}

	_, err := GenerateSchedule(context.Background(), mock, zap.NewNop(), testWeek(t), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixed_day_off")
}
