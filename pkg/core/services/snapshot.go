package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sonnenschein-kita/planner/pkg/core/model"
	"github.com/sonnenschein-kita/planner/pkg/core/planner"
	"github.com/sonnenschein-kita/planner/pkg/db"
)

// snapshotStore loads the entities a generation or validation run needs.
type snapshotStore interface {
	GetGroups(ctx context.Context) ([]db.Group, error)
	GetAttendance(ctx context.Context) ([]db.Attendance, error)
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	GetRestrictions(ctx context.Context) ([]db.Restriction, error)
	GetAbsencesOverlapping(ctx context.Context, start, end time.Time) ([]db.Absence, error)
}

// snapshot is the converted, validated view of the database the engine
// consumes. Restriction rows are parsed exactly once here.
type snapshot struct {
	Groups       []model.Group    // all groups, active and inactive
	ActiveGroups []model.Group
	Employees    []model.Employee // all employees, active and inactive
	ActiveStaff  []model.Employee
	Restrictions map[string]model.RestrictionSet
	Attendance   []model.Attendance
	Absences     []model.Absence
}

func loadSnapshot(ctx context.Context, store snapshotStore, weekStart time.Time) (*snapshot, error) {
	groupRecords, err := store.GetGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}
	attendanceRecords, err := store.GetAttendance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}
	employeeRecords, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	restrictionRecords, err := store.GetRestrictions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch restrictions: %w", err)
	}
	absenceRecords, err := store.GetAbsencesOverlapping(ctx, weekStart, weekStart.AddDate(0, 0, 4))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch absences: %w", err)
	}

	snap := &snapshot{Restrictions: map[string]model.RestrictionSet{}}

	for _, g := range groupRecords {
		group, err := toDomainGroup(g)
		if err != nil {
			return nil, err
		}
		snap.Groups = append(snap.Groups, group)
		if group.IsActive {
			snap.ActiveGroups = append(snap.ActiveGroups, group)
		}
	}

	for _, e := range employeeRecords {
		emp, err := toDomainEmployee(e)
		if err != nil {
			return nil, err
		}
		snap.Employees = append(snap.Employees, emp)
		if emp.IsActive {
			snap.ActiveStaff = append(snap.ActiveStaff, emp)
		}
	}

	parsed := map[string][]model.Restriction{}
	for _, r := range restrictionRecords {
		restriction, err := model.ParseRestriction(r.Kind, r.Value)
		if err != nil {
			return nil, fmt.Errorf("restriction %s for employee %s: %w", r.Kind, r.EmployeeID, err)
		}
		parsed[r.EmployeeID] = append(parsed[r.EmployeeID], restriction)
	}
	for employeeID, restrictions := range parsed {
		snap.Restrictions[employeeID] = model.NewRestrictionSet(restrictions)
	}

	for _, a := range attendanceRecords {
		snap.Attendance = append(snap.Attendance, model.Attendance{
			GroupID:          a.GroupID,
			Weekday:          a.Weekday,
			ExpectedChildren: a.ExpectedChildren,
			ArrivalTime:      a.ArrivalTime,
			DepartureTime:    a.DepartureTime,
		})
	}

	for _, a := range absenceRecords {
		snap.Absences = append(snap.Absences, model.Absence{
			EmployeeID: a.EmployeeID,
			StartDate:  a.StartDate,
			EndDate:    a.EndDate,
			Type:       model.AbsenceType(a.Kind),
			Note:       a.Note,
		})
	}

	return snap, nil
}

func toDomainGroup(g db.Group) (model.Group, error) {
	area := model.Area(g.Area)
	if !area.IsValid() || area == model.AreaBoth {
		return model.Group{}, &model.ConfigError{Msg: fmt.Sprintf("group %s: unknown area %q", g.Name, g.Area)}
	}
	if g.RatioStaff <= 0 || g.RatioChildren <= 0 {
		return model.Group{}, &model.ConfigError{Msg: fmt.Sprintf("group %s: ratio %d:%d is not positive", g.Name, g.RatioStaff, g.RatioChildren)}
	}
	return model.Group{
		ID:            g.ID,
		Name:          g.Name,
		Area:          area,
		MinChildren:   g.MinChildren,
		MaxChildren:   g.MaxChildren,
		RatioStaff:    g.RatioStaff,
		RatioChildren: g.RatioChildren,
		IsActive:      g.IsActive,
	}, nil
}

func toDomainEmployee(e db.Employee) (model.Employee, error) {
	role := model.Role(e.Role)
	if !role.IsValid() {
		return model.Employee{}, &model.ConfigError{Msg: fmt.Sprintf("employee %s %s: unknown role %q", e.FirstName, e.LastName, e.Role)}
	}
	area := model.Area(e.Area)
	if !area.IsValid() {
		return model.Employee{}, &model.ConfigError{Msg: fmt.Sprintf("employee %s %s: unknown area %q", e.FirstName, e.LastName, e.Area)}
	}
	return model.Employee{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Role:          role,
		Area:          area,
		ContractHours: e.ContractHours,
		DaysPerWeek:   e.DaysPerWeek,
		IsActive:      e.IsActive,
	}, nil
}

func toPlannerShift(s db.Shift) planner.Shift {
	return planner.Shift{
		EmployeeID:   s.EmployeeID,
		GroupID:      s.GroupID,
		Weekday:      s.Weekday,
		Start:        s.StartTime,
		End:          s.EndTime,
		BreakStart:   s.BreakStart,
		BreakMinutes: s.BreakMinutes,
		Manual:       s.IsManual,
	}
}
