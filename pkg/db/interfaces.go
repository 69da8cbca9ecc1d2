package db

import (
	"context"
	"time"
)

// SnapshotStore loads the read-mostly entities the planner consumes.
type SnapshotStore interface {
	GetCenterSettings(ctx context.Context) (*CenterSettings, error)
	GetGroups(ctx context.Context) ([]Group, error)
	GetAttendance(ctx context.Context) ([]Attendance, error)
	GetEmployees(ctx context.Context) ([]Employee, error)
	GetRestrictions(ctx context.Context) ([]Restriction, error)
	GetAbsencesOverlapping(ctx context.Context, start, end time.Time) ([]Absence, error)
}

// ScheduleStore manages weekly schedule rows and their shifts.
type ScheduleStore interface {
	GetScheduleByWeek(ctx context.Context, weekStart time.Time) (*Schedule, error)
	GetSchedules(ctx context.Context) ([]Schedule, error)
	InsertSchedule(ctx context.Context, schedule *Schedule) error
	UpdateScheduleStatus(ctx context.Context, scheduleID, status string, publishedAt *time.Time) error
	GetShifts(ctx context.Context, scheduleID string) ([]Shift, error)

	// ApplyPlan atomically replaces all non-manual shifts of a draft
	// schedule and updates its scores. Manual shifts are never touched.
	ApplyPlan(ctx context.Context, scheduleID string, shifts []Shift, scores ScheduleScores) error
}

// Database is the full store surface implemented by pkg/postgres.
type Database interface {
	SnapshotStore
	ScheduleStore
}
