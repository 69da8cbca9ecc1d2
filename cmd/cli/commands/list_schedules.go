package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sonnenschein-kita/planner/pkg/core/services"
)

// ListSchedulesCmd creates the schedules command
func ListSchedulesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "schedules",
		Short: "List all weekly schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedules, err := services.ListSchedules(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return fmt.Errorf("listing schedules failed: %w", err)
			}
			if len(schedules) == 0 {
				fmt.Println("No schedules yet. Run plan-weeks to create drafts.")
				return nil
			}

			fmt.Printf("\n%-12s %-10s %9s %9s %11s %11s\n", "Week", "Status", "Coverage", "Fairness", "Preference", "Compliance")
			for _, s := range schedules {
				fmt.Printf("%-12s %-10s %9d %9d %11d %11d\n",
					s.WeekStart.Format("2006-01-02"), s.Status,
					s.ScoreCoverage, s.ScoreFairness, s.ScorePreference, s.ScoreCompliance)
			}
			fmt.Println()
			return nil
		},
	}
}
