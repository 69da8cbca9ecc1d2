package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sonnenschein-kita/planner/pkg/core/services"
)

// ViewScheduleCmd creates the view command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show a week's plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			week, _ := cmd.Flags().GetString("week")
			weekStart, err := parseWeekFlag(week)
			if err != nil {
				return err
			}

			result, err := services.ViewSchedule(app.Ctx, app.Database, app.Logger, weekStart)
			if err != nil {
				return err
			}

			s := result.Schedule
			if c := result.Center; c != nil {
				fmt.Printf("\n%s (open %s-%s)\n", c.Name, c.OpenTime, c.CloseTime)
			}
			fmt.Printf("\nWeek of %s  [%s]\n", s.WeekStart.Format("2006-01-02"), s.Status)
			fmt.Printf("Scores: coverage %d  fairness %d  preference %d  compliance %d\n\n",
				s.ScoreCoverage, s.ScoreFairness, s.ScorePreference, s.ScoreCompliance)

			for _, day := range result.Days {
				fmt.Printf("%s\n", day.Weekday)
				if len(day.Groups) == 0 {
					fmt.Println("  (no staffing required)")
					continue
				}
				for _, g := range day.Groups {
					fmt.Printf("  %s (%d/%d)\n", g.GroupName, len(g.Assignments), g.Required)
					for _, a := range g.Assignments {
						marker := ""
						if a.Manual {
							marker = " [manual]"
						}
						fmt.Printf("    %s-%s  %s (%s)%s\n", a.Start, a.End, a.EmployeeName, a.Role, marker)
					}
				}
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("week", "", "Week to show, as YYYY-MM-DD (any day of the week)")
	cmd.MarkFlagRequired("week")

	return cmd
}
