package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sonnenschein-kita/planner/pkg/core/services"
)

// PublishScheduleCmd creates the publish command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a week's schedule",
		Long:  "Mark a schedule as published. Refused while the validator reports violations unless --force is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			week, _ := cmd.Flags().GetString("week")
			force, _ := cmd.Flags().GetBool("force")
			undo, _ := cmd.Flags().GetBool("undo")

			weekStart, err := parseWeekFlag(week)
			if err != nil {
				return err
			}

			if undo {
				schedule, err := services.UnpublishSchedule(app.Ctx, app.Database, app.Logger, weekStart)
				if err != nil {
					return err
				}
				fmt.Printf("Schedule for week %s is back in draft.\n", schedule.WeekStart.Format("2006-01-02"))
				return nil
			}

			result, err := services.PublishSchedule(app.Ctx, app.Database, app.Logger, weekStart, force)
			if err != nil {
				return err
			}

			if !result.Published {
				fmt.Printf("\nPublish refused: %d violation(s) outstanding.\n\n", len(result.Violations))
				for _, v := range result.Violations {
					fmt.Printf("  - %s\n", v)
				}
				fmt.Println("\nFix the plan or use --force to publish anyway.")
				return nil
			}

			if len(result.Violations) > 0 {
				fmt.Printf("Schedule published with %d outstanding violation(s) (--force).\n", len(result.Violations))
			} else {
				fmt.Printf("Schedule for week %s published.\n", result.WeekStart.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().String("week", "", "Week to publish, as YYYY-MM-DD (any day of the week)")
	cmd.MarkFlagRequired("week")
	cmd.Flags().Bool("force", false, "Publish even if the validator reports violations")
	cmd.Flags().Bool("undo", false, "Move a published schedule back to draft")

	return cmd
}

// ArchiveScheduleCmd creates the archive command
func ArchiveScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Archive a week's schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			week, _ := cmd.Flags().GetString("week")
			weekStart, err := parseWeekFlag(week)
			if err != nil {
				return err
			}

			schedule, err := services.ArchiveSchedule(app.Ctx, app.Database, app.Logger, weekStart)
			if err != nil {
				return err
			}
			fmt.Printf("Schedule for week %s archived.\n", schedule.WeekStart.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().String("week", "", "Week to archive, as YYYY-MM-DD (any day of the week)")
	cmd.MarkFlagRequired("week")

	return cmd
}
