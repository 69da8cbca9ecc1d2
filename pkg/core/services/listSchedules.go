package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/sonnenschein-kita/planner/pkg/db"
)

// ListSchedulesStore defines the database operations needed for the
// schedule overview.
type ListSchedulesStore interface {
	GetSchedules(ctx context.Context) ([]db.Schedule, error)
}

// ListSchedules returns every schedule ordered by week start, newest
// first.
func ListSchedules(ctx context.Context, store ListSchedulesStore, logger *zap.Logger) ([]db.Schedule, error) {
	schedules, err := store.GetSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}

	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].WeekStart.After(schedules[j].WeekStart)
	})

	logger.Debug("Listed schedules", zap.Int("count", len(schedules)))
	return schedules, nil
}
