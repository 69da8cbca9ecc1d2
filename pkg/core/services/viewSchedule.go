package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sonnenschein-kita/planner/pkg/core/model"
	"github.com/sonnenschein-kita/planner/pkg/core/planner"
	"github.com/sonnenschein-kita/planner/pkg/db"
)

// ViewScheduleStore defines the database operations needed for the
// read-only weekly summary.
type ViewScheduleStore interface {
	snapshotStore
	GetCenterSettings(ctx context.Context) (*db.CenterSettings, error)
	GetScheduleByWeek(ctx context.Context, weekStart time.Time) (*db.Schedule, error)
	GetShifts(ctx context.Context, scheduleID string) ([]db.Shift, error)
}

// ScheduleAssignment is one shift line in the weekly summary
type ScheduleAssignment struct {
	EmployeeName string
	Role         model.Role
	Start        string
	End          string
	Manual       bool
}

// ScheduleGroupDay summarizes one group's staffing on one weekday
type ScheduleGroupDay struct {
	GroupName   string
	Required    int
	Assignments []ScheduleAssignment
}

// ScheduleDay is one weekday of the summary
type ScheduleDay struct {
	Weekday string
	Groups  []ScheduleGroupDay
}

// ViewScheduleResult is the text-renderable weekly summary
type ViewScheduleResult struct {
	Schedule db.Schedule
	Center   *db.CenterSettings // nil if the center is not set up yet
	Days     []ScheduleDay
}

// ViewSchedule loads a week's persisted plan as a renderable summary.
func ViewSchedule(
	ctx context.Context,
	store ViewScheduleStore,
	logger *zap.Logger,
	weekStart time.Time,
) (*ViewScheduleResult, error) {
	weekStart = mondayOf(weekStart)
	logger.Debug("Starting viewSchedule", zap.Time("week_start", weekStart))

	schedule, err := store.GetScheduleByWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if schedule == nil {
		return nil, fmt.Errorf("no schedule exists for week %s", weekStart.Format(weekDateFormat))
	}

	center, err := store.GetCenterSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch center settings: %w", err)
	}

	snap, err := loadSnapshot(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}

	shifts, err := store.GetShifts(ctx, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	employees := map[string]model.Employee{}
	for _, e := range snap.Employees {
		employees[e.ID] = e
	}

	attendance := map[string]map[int]model.Attendance{}
	for _, a := range snap.Attendance {
		if attendance[a.GroupID] == nil {
			attendance[a.GroupID] = map[int]model.Attendance{}
		}
		attendance[a.GroupID][a.Weekday] = a
	}

	result := &ViewScheduleResult{Schedule: *schedule, Center: center}
	for weekday := 0; weekday < 5; weekday++ {
		day := ScheduleDay{Weekday: model.WeekdayNames[weekday]}
		for _, g := range snap.ActiveGroups {
			required := planner.RequiredStaffFor(g, attendance[g.ID][weekday])
			groupDay := ScheduleGroupDay{GroupName: g.Name, Required: required}
			for _, s := range shifts {
				if s.Weekday != weekday || s.GroupID != g.ID {
					continue
				}
				name := s.EmployeeID
				role := model.Role("")
				if emp, ok := employees[s.EmployeeID]; ok {
					name = emp.FullName()
					role = emp.Role
				}
				groupDay.Assignments = append(groupDay.Assignments, ScheduleAssignment{
					EmployeeName: name,
					Role:         role,
					Start:        s.StartTime,
					End:          s.EndTime,
					Manual:       s.IsManual,
				})
			}
			if required > 0 || len(groupDay.Assignments) > 0 {
				day.Groups = append(day.Groups, groupDay)
			}
		}
		result.Days = append(result.Days, day)
	}

	return result, nil
}
