package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sonnenschein-kita/planner/pkg/db"
)

// GetCenterSettings retrieves the center settings row, or nil if the
// center has not been set up yet.
func (d *DB) GetCenterSettings(ctx context.Context) (*db.CenterSettings, error) {
	var s db.CenterSettings
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, open_time, close_time, core_start, core_end
		FROM center_settings
		LIMIT 1
	`).Scan(&s.ID, &s.Name, &s.OpenTime, &s.CloseTime, &s.CoreStart, &s.CoreEnd)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query center settings: %w", err)
	}
	return &s, nil
}

// GetGroups retrieves all group records ordered by area and name.
func (d *DB) GetGroups(ctx context.Context) ([]db.Group, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, area, min_children, max_children, ratio_staff, ratio_children, is_active
		FROM groups
		ORDER BY area, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	var groups []db.Group
	for rows.Next() {
		var g db.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Area, &g.MinChildren, &g.MaxChildren,
			&g.RatioStaff, &g.RatioChildren, &g.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groups: %w", err)
	}
	return groups, nil
}

// GetAttendance retrieves all expected-attendance records.
func (d *DB) GetAttendance(ctx context.Context) ([]db.Attendance, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, group_id, weekday, expected_children, arrival_time, departure_time
		FROM attendance
		ORDER BY group_id, weekday
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var attendance []db.Attendance
	for rows.Next() {
		var a db.Attendance
		if err := rows.Scan(&a.ID, &a.GroupID, &a.Weekday, &a.ExpectedChildren,
			&a.ArrivalTime, &a.DepartureTime); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendance = append(attendance, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance: %w", err)
	}
	return attendance, nil
}

// GetEmployees retrieves all employee records ordered by name.
func (d *DB) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, role, area, contract_hours, days_per_week, is_active
		FROM employees
		ORDER BY last_name, first_name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []db.Employee
	for rows.Next() {
		var e db.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Role, &e.Area,
			&e.ContractHours, &e.DaysPerWeek, &e.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}
	return employees, nil
}

// GetRestrictions retrieves all raw restriction records.
func (d *DB) GetRestrictions(ctx context.Context) ([]db.Restriction, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, employee_id, kind, value
		FROM restrictions
		ORDER BY employee_id, kind, value
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query restrictions: %w", err)
	}
	defer rows.Close()

	var restrictions []db.Restriction
	for rows.Next() {
		var r db.Restriction
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.Kind, &r.Value); err != nil {
			return nil, fmt.Errorf("failed to scan restriction: %w", err)
		}
		restrictions = append(restrictions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restrictions: %w", err)
	}
	return restrictions, nil
}

// GetAbsencesOverlapping retrieves absences overlapping [start, end].
func (d *DB) GetAbsencesOverlapping(ctx context.Context, start, end time.Time) ([]db.Absence, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, employee_id, start_date, end_date, kind, note
		FROM absences
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY employee_id, start_date
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}
	defer rows.Close()

	var absences []db.Absence
	for rows.Next() {
		var a db.Absence
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.StartDate, &a.EndDate, &a.Kind, &a.Note); err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating absences: %w", err)
	}
	return absences, nil
}
