package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sonnenschein-kita/planner/pkg/core/services"
)

// GenerateScheduleCmd creates the generate command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a week's staffing plan",
		Long:  "Run the planner for one week, replacing previously generated shifts. Manual shifts are preserved.",
		RunE: func(cmd *cobra.Command, args []string) error {
			week, _ := cmd.Flags().GetString("week")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			weekStart, err := parseWeekFlag(week)
			if err != nil {
				return err
			}

			app.Logger.Debug("generate command",
				zap.String("week", week),
				zap.Bool("dry_run", dryRun))

			result, err := services.GenerateSchedule(app.Ctx, app.Database, app.Logger, weekStart, dryRun)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			fmt.Printf("\nWeekly plan for %s\n\n", result.WeekStart.Format("2006-01-02"))
			fmt.Printf("Schedule:      %s\n", result.ScheduleID)
			fmt.Printf("Shifts:        %d generated, %d manual preserved\n", len(result.Shifts), result.ManualShifts)
			if dryRun {
				fmt.Printf("Mode:          dry run (not saved)\n")
			} else if result.Applied {
				fmt.Printf("Mode:          saved to database\n")
			}
			fmt.Println()

			fmt.Printf("Scores:        coverage %d  fairness %d  preference %d  compliance %d\n\n",
				result.Scores.Coverage, result.Scores.Fairness,
				result.Scores.Preference, result.Scores.Compliance)

			if len(result.Warnings) > 0 {
				fmt.Printf("Warnings (%d):\n", len(result.Warnings))
				for _, w := range result.Warnings {
					fmt.Printf("  - %s\n", w)
				}
				fmt.Println()
				fmt.Println("The plan was generated best-effort; resolve shortfalls manually or adjust staffing.")
			}

			return nil
		},
	}

	cmd.Flags().String("week", "", "Week to generate, as YYYY-MM-DD (any day of the week)")
	cmd.MarkFlagRequired("week")
	cmd.Flags().Bool("dry-run", false, "Run without saving to database")

	return cmd
}
