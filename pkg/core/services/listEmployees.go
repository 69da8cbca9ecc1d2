package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sonnenschein-kita/planner/pkg/core/model"
	"github.com/sonnenschein-kita/planner/pkg/db"
)

// ListEmployeesStore defines the database operations needed for the
// roster listing.
type ListEmployeesStore interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	GetRestrictions(ctx context.Context) ([]db.Restriction, error)
}

// EmployeeListing is one roster row with a restriction summary
type EmployeeListing struct {
	Employee     model.Employee
	Restrictions []string
}

// ListEmployees returns the full roster with per-employee restriction
// summaries, in the store's name order.
func ListEmployees(ctx context.Context, store ListEmployeesStore, logger *zap.Logger) ([]EmployeeListing, error) {
	employeeRecords, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	restrictionRecords, err := store.GetRestrictions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch restrictions: %w", err)
	}

	summaries := map[string][]string{}
	for _, r := range restrictionRecords {
		summary := r.Kind
		if r.Value != "" {
			summary = fmt.Sprintf("%s=%s", r.Kind, r.Value)
		}
		summaries[r.EmployeeID] = append(summaries[r.EmployeeID], summary)
	}

	var listings []EmployeeListing
	for _, record := range employeeRecords {
		emp, err := toDomainEmployee(record)
		if err != nil {
			return nil, err
		}
		listings = append(listings, EmployeeListing{
			Employee:     emp,
			Restrictions: summaries[emp.ID],
		})
	}

	logger.Debug("Listed employees", zap.Int("count", len(listings)))
	return listings, nil
}
