package services

import (
	"fmt"
	"time"
)

const weekDateFormat = "2006-01-02"

// mondayOf normalizes a date to the Monday of its ISO week, at midnight UTC.
func mondayOf(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return t.AddDate(0, 0, -offset)
}

// parseWeekStart parses a YYYY-MM-DD date and normalizes it to its Monday.
func parseWeekStart(date string) (time.Time, error) {
	t, err := time.Parse(weekDateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week date %q (expected YYYY-MM-DD): %w", date, err)
	}
	return mondayOf(t), nil
}
