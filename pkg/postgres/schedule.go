package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sonnenschein-kita/planner/pkg/db"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// GetScheduleByWeek retrieves the schedule for a week-start date, or nil
// if the week has no schedule yet.
func (d *DB) GetScheduleByWeek(ctx context.Context, weekStart time.Time) (*db.Schedule, error) {
	var s db.Schedule
	err := d.pool.QueryRow(ctx, `
		SELECT id, week_start, status, score_coverage, score_fairness,
		       score_preference, score_compliance, published_at, created_at
		FROM schedules
		WHERE week_start = $1
	`, weekStart).Scan(&s.ID, &s.WeekStart, &s.Status, &s.ScoreCoverage, &s.ScoreFairness,
		&s.ScorePreference, &s.ScoreCompliance, &s.PublishedAt, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}
	return &s, nil
}

// GetSchedules retrieves all schedule records ordered by week start.
func (d *DB) GetSchedules(ctx context.Context) ([]db.Schedule, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, week_start, status, score_coverage, score_fairness,
		       score_preference, score_compliance, published_at, created_at
		FROM schedules
		ORDER BY week_start
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []db.Schedule
	for rows.Next() {
		var s db.Schedule
		if err := rows.Scan(&s.ID, &s.WeekStart, &s.Status, &s.ScoreCoverage, &s.ScoreFairness,
			&s.ScorePreference, &s.ScoreCompliance, &s.PublishedAt, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedules: %w", err)
	}
	return schedules, nil
}

// InsertSchedule inserts a new schedule record
func (d *DB) InsertSchedule(ctx context.Context, schedule *db.Schedule) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO schedules (id, week_start, status, score_coverage, score_fairness,
		                       score_preference, score_compliance, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, schedule.ID, schedule.WeekStart, schedule.Status, schedule.ScoreCoverage,
		schedule.ScoreFairness, schedule.ScorePreference, schedule.ScoreCompliance,
		schedule.PublishedAt)
	if err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

// UpdateScheduleStatus updates a schedule's lifecycle status and publish
// timestamp.
func (d *DB) UpdateScheduleStatus(ctx context.Context, scheduleID, status string, publishedAt *time.Time) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE schedules SET status = $2, published_at = $3 WHERE id = $1
	`, scheduleID, status, publishedAt)
	if err != nil {
		return fmt.Errorf("failed to update schedule status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", scheduleID)
	}
	return nil
}

// GetShifts retrieves all shifts of a schedule.
func (d *DB) GetShifts(ctx context.Context, scheduleID string) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, schedule_id, employee_id, group_id, weekday,
		       start_time, end_time, break_start, break_minutes, is_manual
		FROM shifts
		WHERE schedule_id = $1
		ORDER BY weekday, group_id, employee_id
	`, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.Shift
	for rows.Next() {
		var s db.Shift
		var groupID, breakStart *string
		if err := rows.Scan(&s.ID, &s.ScheduleID, &s.EmployeeID, &groupID, &s.Weekday,
			&s.StartTime, &s.EndTime, &breakStart, &s.BreakMinutes, &s.IsManual); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		if groupID != nil {
			s.GroupID = *groupID
		}
		if breakStart != nil {
			s.BreakStart = *breakStart
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}
	return shifts, nil
}

// ApplyPlan replaces all non-manual shifts of a schedule with the given
// shifts and updates the schedule's scores, as a single transaction.
// Partial application would leave the schedule inconsistent, so either
// everything commits or nothing does.
func (d *DB) ApplyPlan(ctx context.Context, scheduleID string, shifts []db.Shift, scores db.ScheduleScores) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM shifts WHERE schedule_id = $1 AND is_manual = FALSE
	`, scheduleID); err != nil {
		return fmt.Errorf("failed to delete generated shifts: %w", err)
	}

	for _, s := range shifts {
		var groupID, breakStart *string
		if s.GroupID != "" {
			groupID = &s.GroupID
		}
		if s.BreakStart != "" {
			breakStart = &s.BreakStart
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO shifts (id, schedule_id, employee_id, group_id, weekday,
			                    start_time, end_time, break_start, break_minutes, is_manual)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE)
		`, s.ID, scheduleID, s.EmployeeID, groupID, s.Weekday,
			s.StartTime, s.EndTime, breakStart, s.BreakMinutes); err != nil {
			return fmt.Errorf("failed to insert shift: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `
		UPDATE schedules
		SET score_coverage = $2, score_fairness = $3, score_preference = $4, score_compliance = $5
		WHERE id = $1
	`, scheduleID, scores.Coverage, scores.Fairness, scores.Preference, scores.Compliance); err != nil {
		return fmt.Errorf("failed to update schedule scores: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit plan: %w", err)
	}
	return nil
}
