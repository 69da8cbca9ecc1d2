package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sonnenschein-kita/planner/pkg/core/services"
)

// ValidateScheduleCmd creates the validate command
func ValidateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a week's persisted plan",
		Long:  "Re-check a persisted schedule against the hard staffing rules, independent of how it was produced.",
		RunE: func(cmd *cobra.Command, args []string) error {
			week, _ := cmd.Flags().GetString("week")
			weekStart, err := parseWeekFlag(week)
			if err != nil {
				return err
			}

			result, err := services.ValidateSchedule(app.Ctx, app.Database, app.Logger, weekStart)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			fmt.Printf("\nValidation for week %s (%s)\n\n", result.WeekStart.Format("2006-01-02"), result.Status)
			if len(result.Violations) == 0 {
				fmt.Println("No violations. The plan is fully compliant.")
				return nil
			}

			fmt.Printf("Violations (%d):\n", len(result.Violations))
			for _, v := range result.Violations {
				fmt.Printf("  - %s\n", v)
			}
			return nil
		},
	}

	cmd.Flags().String("week", "", "Week to validate, as YYYY-MM-DD (any day of the week)")
	cmd.MarkFlagRequired("week")

	return cmd
}
