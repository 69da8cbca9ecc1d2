package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMondayOf(t *testing.T) {
	mustParse := func(date string) time.Time {
		parsed, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		return parsed
	}
	monday := mustParse("2026-08-24")

	assert.Equal(t, monday, mondayOf(monday), "a Monday maps to itself")
	assert.Equal(t, monday, mondayOf(mustParse("2026-08-26")), "Wednesday")
	assert.Equal(t, monday, mondayOf(mustParse("2026-08-30")), "Sunday belongs to the week it ends")
	assert.Equal(t, monday.AddDate(0, 0, 7), mondayOf(mustParse("2026-08-31")))

	// Midnights only, regardless of the input clock time.
	late := time.Date(2026, 8, 26, 23, 45, 0, 0, time.UTC)
	assert.Equal(t, monday, mondayOf(late))
}

func TestParseWeekStart(t *testing.T) {
	weekStart, err := parseWeekStart("2026-08-27")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, weekStart.Weekday())
	assert.Equal(t, "2026-08-24", weekStart.Format("2006-01-02"))

	_, err = parseWeekStart("27.08.2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid week date")
}
