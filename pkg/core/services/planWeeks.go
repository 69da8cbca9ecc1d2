package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/sonnenschein-kita/planner/internal/config"
	"github.com/sonnenschein-kita/planner/pkg/core/model"
	"github.com/sonnenschein-kita/planner/pkg/db"
)

// PlanWeeksStore defines the database operations needed for creating
// upcoming draft schedules.
type PlanWeeksStore interface {
	GetScheduleByWeek(ctx context.Context, weekStart time.Time) (*db.Schedule, error)
	InsertSchedule(ctx context.Context, schedule *db.Schedule) error
}

// PlanWeeksResult contains the weeks that were created and skipped
type PlanWeeksResult struct {
	Created []time.Time
	Skipped []time.Time // weeks that already had a schedule
}

// PlanWeeks creates empty draft schedules for the upcoming weeks
// produced by the configured recurrence rule, skipping weeks that
// already have one.
func PlanWeeks(
	ctx context.Context,
	store PlanWeeksStore,
	cfg *config.Config,
	logger *zap.Logger,
	weeks int,
) (*PlanWeeksResult, error) {
	if weeks <= 0 {
		weeks = cfg.WeeksAhead
	}

	rule, err := rrule.StrToRRule(cfg.PlanningRule)
	if err != nil {
		return nil, fmt.Errorf("invalid planning rule: %w", err)
	}
	start := mondayOf(time.Now().UTC())
	rule.DTStart(start)

	occurrences := rule.Between(start, start.AddDate(0, 0, 7*weeks), true)
	logger.Debug("Planning rule expanded",
		zap.String("rule", cfg.PlanningRule),
		zap.Int("occurrences", len(occurrences)))

	result := &PlanWeeksResult{}
	seen := map[time.Time]bool{}
	for _, occurrence := range occurrences {
		weekStart := mondayOf(occurrence)
		if seen[weekStart] {
			continue
		}
		seen[weekStart] = true

		existing, err := store.GetScheduleByWeek(ctx, weekStart)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch schedule: %w", err)
		}
		if existing != nil {
			result.Skipped = append(result.Skipped, weekStart)
			continue
		}

		schedule := &db.Schedule{
			ID:        uuid.NewString(),
			WeekStart: weekStart,
			Status:    string(model.StatusDraft),
		}
		if err := store.InsertSchedule(ctx, schedule); err != nil {
			return nil, fmt.Errorf("failed to create schedule for week %s: %w",
				weekStart.Format(weekDateFormat), err)
		}
		logger.Info("Created draft schedule",
			zap.String("id", schedule.ID),
			zap.Time("week_start", weekStart))
		result.Created = append(result.Created, weekStart)
	}

	return result, nil
}
