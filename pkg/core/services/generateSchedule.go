package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sonnenschein-kita/planner/pkg/core/model"
	"github.com/sonnenschein-kita/planner/pkg/core/planner"
	"github.com/sonnenschein-kita/planner/pkg/db"
)

// GenerateScheduleStore defines the database operations needed for
// generating a week's plan.
type GenerateScheduleStore interface {
	snapshotStore
	GetScheduleByWeek(ctx context.Context, weekStart time.Time) (*db.Schedule, error)
	InsertSchedule(ctx context.Context, schedule *db.Schedule) error
	GetShifts(ctx context.Context, scheduleID string) ([]db.Shift, error)
	ApplyPlan(ctx context.Context, scheduleID string, shifts []db.Shift, scores db.ScheduleScores) error
}

// GenerateScheduleResult contains the generation outcome
type GenerateScheduleResult struct {
	ScheduleID      string
	WeekStart       time.Time
	ScheduleCreated bool
	Shifts          []planner.Shift // generated shifts only
	ManualShifts    int
	Warnings        []string
	Scores          planner.Scores
	Applied         bool
}

// GenerateSchedule runs the planner for one week and applies the result.
// The week's schedule row is created lazily as a draft if it does not
// exist yet; non-draft schedules are refused. Applying replaces only
// non-manual shifts and updates the four scores in one transaction.
// If dryRun is true nothing is persisted.
func GenerateSchedule(
	ctx context.Context,
	store GenerateScheduleStore,
	logger *zap.Logger,
	weekStart time.Time,
	dryRun bool,
) (*GenerateScheduleResult, error) {
	weekStart = mondayOf(weekStart)
	logger.Debug("Starting generateSchedule",
		zap.Time("week_start", weekStart),
		zap.Bool("dry_run", dryRun))

	schedule, err := store.GetScheduleByWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	created := false
	if schedule == nil {
		schedule = &db.Schedule{
			ID:        uuid.NewString(),
			WeekStart: weekStart,
			Status:    string(model.StatusDraft),
		}
		created = true
		if !dryRun {
			if err := store.InsertSchedule(ctx, schedule); err != nil {
				return nil, fmt.Errorf("failed to create draft schedule: %w", err)
			}
			logger.Info("Created draft schedule", zap.String("id", schedule.ID))
		}
	}

	if schedule.Status != string(model.StatusDraft) {
		return nil, fmt.Errorf("schedule for week %s is %s - only draft schedules can be regenerated",
			weekStart.Format(weekDateFormat), schedule.Status)
	}

	snap, err := loadSnapshot(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded snapshot",
		zap.Int("active_groups", len(snap.ActiveGroups)),
		zap.Int("active_staff", len(snap.ActiveStaff)),
		zap.Int("absences", len(snap.Absences)))

	var manual []planner.Shift
	if !created {
		existing, err := store.GetShifts(ctx, schedule.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch shifts: %w", err)
		}
		for _, s := range existing {
			if s.IsManual {
				manual = append(manual, toPlannerShift(s))
			}
		}
	}

	result, err := planner.Generate(planner.PlanInput{
		Groups:       snap.ActiveGroups,
		Employees:    snap.ActiveStaff,
		Restrictions: snap.Restrictions,
		Attendance:   snap.Attendance,
		Absences:     snap.Absences,
		WeekStart:    weekStart,
		ManualShifts: manual,
	})
	if err != nil {
		return nil, fmt.Errorf("plan generation failed: %w", err)
	}

	logger.Info("Plan generated",
		zap.Int("shifts", len(result.Shifts)),
		zap.Int("warnings", len(result.Warnings)),
		zap.Int("coverage", result.Scores.Coverage),
		zap.Int("fairness", result.Scores.Fairness),
		zap.Int("preference", result.Scores.Preference),
		zap.Int("compliance", result.Scores.Compliance))
	for _, w := range result.Warnings {
		logger.Warn("Coverage shortfall", zap.String("warning", w))
	}

	applied := false
	if !dryRun {
		records := make([]db.Shift, 0, len(result.Shifts))
		for _, s := range result.Shifts {
			records = append(records, db.Shift{
				ID:           uuid.NewString(),
				ScheduleID:   schedule.ID,
				EmployeeID:   s.EmployeeID,
				GroupID:      s.GroupID,
				Weekday:      s.Weekday,
				StartTime:    s.Start,
				EndTime:      s.End,
				BreakStart:   s.BreakStart,
				BreakMinutes: s.BreakMinutes,
			})
		}
		scores := db.ScheduleScores{
			Coverage:   result.Scores.Coverage,
			Fairness:   result.Scores.Fairness,
			Preference: result.Scores.Preference,
			Compliance: result.Scores.Compliance,
		}
		if err := store.ApplyPlan(ctx, schedule.ID, records, scores); err != nil {
			return nil, fmt.Errorf("failed to apply plan: %w", err)
		}
		applied = true
	}

	return &GenerateScheduleResult{
		ScheduleID:      schedule.ID,
		WeekStart:       weekStart,
		ScheduleCreated: created,
		Shifts:          result.Shifts,
		ManualShifts:    len(manual),
		Warnings:        result.Warnings,
		Scores:          result.Scores,
		Applied:         applied,
	}, nil
}
