package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sonnenschein-kita/planner/pkg/core/services"
)

// PlanWeeksCmd creates the plan-weeks command
func PlanWeeksCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan-weeks",
		Short: "Create draft schedules for upcoming weeks",
		Long:  "Create empty draft schedules for the upcoming weeks produced by the configured planning rule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks, _ := cmd.Flags().GetInt("weeks")

			result, err := services.PlanWeeks(app.Ctx, app.Database, app.Cfg, app.Logger, weeks)
			if err != nil {
				return fmt.Errorf("planning weeks failed: %w", err)
			}

			fmt.Printf("\nCreated %d draft schedule(s), skipped %d existing.\n", len(result.Created), len(result.Skipped))
			for _, week := range result.Created {
				fmt.Printf("  + week of %s\n", week.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().Int("weeks", 0, "Planning horizon in weeks (default from config)")

	return cmd
}
