package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sonnenschein-kita/planner/pkg/core/services"
)

// ListEmployeesCmd creates the employees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List the staff roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := services.ListEmployees(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return fmt.Errorf("listing employees failed: %w", err)
			}

			fmt.Printf("\n%-28s %-10s %-10s %8s %6s  %s\n", "Name", "Role", "Area", "Hours", "Days", "Restrictions")
			fmt.Println(strings.Repeat("-", 90))
			for _, l := range listings {
				emp := l.Employee
				name := emp.FullName()
				if !emp.IsActive {
					name += " (inactive)"
				}
				fmt.Printf("%-28s %-10s %-10s %8.1f %6d  %s\n",
					name, emp.Role, emp.Area, emp.ContractHours, emp.DaysPerWeek,
					strings.Join(l.Restrictions, ", "))
			}
			fmt.Println()
			return nil
		},
	}
}
