package commands

import (
	"fmt"
	"time"
)

// parseWeekFlag parses the --week flag. Services normalize the date to
// the Monday of its week.
func parseWeekFlag(week string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", week)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --week value %q (expected YYYY-MM-DD): %w", week, err)
	}
	return t, nil
}
