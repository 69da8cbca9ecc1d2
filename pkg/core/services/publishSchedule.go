package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sonnenschein-kita/planner/pkg/core/model"
	"github.com/sonnenschein-kita/planner/pkg/db"
)

// PublishScheduleStore defines the database operations needed for
// schedule lifecycle transitions.
type PublishScheduleStore interface {
	ValidateScheduleStore
	UpdateScheduleStatus(ctx context.Context, scheduleID, status string, publishedAt *time.Time) error
}

// PublishScheduleResult contains the publish outcome
type PublishScheduleResult struct {
	ScheduleID string
	WeekStart  time.Time
	Published  bool
	Violations []string
}

// PublishSchedule marks a draft schedule as published. Publishing is
// refused while the validator reports violations unless force is set.
func PublishSchedule(
	ctx context.Context,
	store PublishScheduleStore,
	logger *zap.Logger,
	weekStart time.Time,
	force bool,
) (*PublishScheduleResult, error) {
	weekStart = mondayOf(weekStart)

	validation, err := ValidateSchedule(ctx, store, logger, weekStart)
	if err != nil {
		return nil, err
	}
	if validation.Status == string(model.StatusPublished) {
		return nil, fmt.Errorf("schedule for week %s is already published", weekStart.Format(weekDateFormat))
	}

	result := &PublishScheduleResult{
		ScheduleID: validation.ScheduleID,
		WeekStart:  weekStart,
		Violations: validation.Violations,
	}

	if len(validation.Violations) > 0 && !force {
		logger.Warn("Publish refused: schedule has violations",
			zap.String("schedule_id", validation.ScheduleID),
			zap.Int("violations", len(validation.Violations)))
		return result, nil
	}

	now := time.Now().UTC()
	if err := store.UpdateScheduleStatus(ctx, validation.ScheduleID, string(model.StatusPublished), &now); err != nil {
		return nil, fmt.Errorf("failed to publish schedule: %w", err)
	}

	logger.Info("Schedule published",
		zap.String("schedule_id", validation.ScheduleID),
		zap.Time("week_start", weekStart),
		zap.Bool("forced", force && len(validation.Violations) > 0))
	result.Published = true
	return result, nil
}

// UnpublishSchedule moves a published schedule back to draft so it can
// be corrected and regenerated.
func UnpublishSchedule(
	ctx context.Context,
	store PublishScheduleStore,
	logger *zap.Logger,
	weekStart time.Time,
) (*db.Schedule, error) {
	weekStart = mondayOf(weekStart)

	schedule, err := store.GetScheduleByWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("no schedule exists for week %s", weekStart.Format(weekDateFormat))
	}
	if schedule.Status != string(model.StatusPublished) {
		return nil, fmt.Errorf("schedule for week %s is %s, not published", weekStart.Format(weekDateFormat), schedule.Status)
	}

	if err := store.UpdateScheduleStatus(ctx, schedule.ID, string(model.StatusDraft), nil); err != nil {
		return nil, fmt.Errorf("failed to unpublish schedule: %w", err)
	}
	logger.Info("Schedule unpublished", zap.String("schedule_id", schedule.ID))
	schedule.Status = string(model.StatusDraft)
	schedule.PublishedAt = nil
	return schedule, nil
}

// ArchiveSchedule marks a schedule as archived. Archived schedules are
// kept for reference and never regenerated.
func ArchiveSchedule(
	ctx context.Context,
	store PublishScheduleStore,
	logger *zap.Logger,
	weekStart time.Time,
) (*db.Schedule, error) {
	weekStart = mondayOf(weekStart)

	schedule, err := store.GetScheduleByWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("no schedule exists for week %s", weekStart.Format(weekDateFormat))
	}
	if schedule.Status == string(model.StatusArchived) {
		return nil, fmt.Errorf("schedule for week %s is already archived", weekStart.Format(weekDateFormat))
	}

	if err := store.UpdateScheduleStatus(ctx, schedule.ID, string(model.StatusArchived), schedule.PublishedAt); err != nil {
		return nil, fmt.Errorf("failed to archive schedule: %w", err)
	}
	logger.Info("Schedule archived", zap.String("schedule_id", schedule.ID))
	schedule.Status = string(model.StatusArchived)
	return schedule, nil
}
