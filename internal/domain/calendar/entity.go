package calendar

import (
	"time"
)

// ViewMode selects how GenerateDays expands a reference date into a day sequence.
type ViewMode string

const (
	ViewModeDay   ViewMode = "day"
	ViewModeWeek  ViewMode = "week"
	ViewModeMonth ViewMode = "month"
	ViewModeRange ViewMode = "range"
)

// Day is a single date cell in a rendered schedule or attendance view.
// Constructed fresh per request and never persisted.
type Day struct {
	Date            time.Time
	IsCurrentPeriod bool
	IsToday         bool
	IsHoliday       bool
	HolidayName     *string
}

// DateKey formats a timestamp as the calendar-date key used throughout
// grouping and grid responses.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DateOnly strips the time component, keeping year/month/day in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two timestamps fall on the same calendar date,
// ignoring their time components and locations.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
