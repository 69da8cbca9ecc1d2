package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sonnenschein-kita/planner/pkg/core/planner"
	"github.com/sonnenschein-kita/planner/pkg/db"
)

// ValidateScheduleStore defines the database operations needed for
// validating a persisted schedule.
type ValidateScheduleStore interface {
	snapshotStore
	GetScheduleByWeek(ctx context.Context, weekStart time.Time) (*db.Schedule, error)
	GetShifts(ctx context.Context, scheduleID string) ([]db.Shift, error)
}

// ValidateScheduleResult contains the re-derived hard-rule violations
// for a persisted schedule, independent of how it was produced.
type ValidateScheduleResult struct {
	ScheduleID string
	WeekStart  time.Time
	Status     string
	Violations []string
}

// ValidateSchedule re-checks a persisted schedule against the hard
// staffing rules. An empty violation list means the plan is compliant.
func ValidateSchedule(
	ctx context.Context,
	store ValidateScheduleStore,
	logger *zap.Logger,
	weekStart time.Time,
) (*ValidateScheduleResult, error) {
	weekStart = mondayOf(weekStart)
	logger.Debug("Starting validateSchedule", zap.Time("week_start", weekStart))

	schedule, err := store.GetScheduleByWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("no schedule exists for week %s", weekStart.Format(weekDateFormat))
	}

	snap, err := loadSnapshot(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}

	shiftRecords, err := store.GetShifts(ctx, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	shifts := make([]planner.Shift, 0, len(shiftRecords))
	for _, s := range shiftRecords {
		shifts = append(shifts, toPlannerShift(s))
	}

	violations := planner.ValidatePlan(planner.ValidationInput{
		Groups:     snap.ActiveGroups,
		Employees:  snap.Employees,
		Attendance: snap.Attendance,
		Shifts:     shifts,
	})

	logger.Info("Schedule validated",
		zap.String("schedule_id", schedule.ID),
		zap.Int("violations", len(violations)))

	return &ValidateScheduleResult{
		ScheduleID: schedule.ID,
		WeekStart:  weekStart,
		Status:     schedule.Status,
		Violations: violations,
	}, nil
}
