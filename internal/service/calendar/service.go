package calendar

import (
	"fmt"
	"time"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/calendar"
)

type calendarServiceImpl struct{}

// NewCalendarService returns the calendar grid generator. It is pure
// computation: "now" comes in on the request, so identical inputs always
// yield identical output.
func NewCalendarService() calendar.CalendarService {
	return &calendarServiceImpl{}
}

// GenerateDays implements calendar.CalendarService.
func (s *calendarServiceImpl) GenerateDays(req calendar.GenerateDaysRequest) ([]calendar.Day, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ref := calendar.DateOnly(req.ReferenceDate)

	switch req.ViewMode {
	case calendar.ViewModeDay:
		return []calendar.Day{s.makeDay(ref, true, req.Now)}, nil

	case calendar.ViewModeWeek:
		monday := mondayOf(ref)
		days := make([]calendar.Day, 0, 7)
		for i := 0; i < 7; i++ {
			days = append(days, s.makeDay(monday.AddDate(0, 0, i), true, req.Now))
		}
		return days, nil

	case calendar.ViewModeMonth:
		return s.monthGrid(ref, req.Now), nil

	case calendar.ViewModeRange:
		start := calendar.DateOnly(*req.RangeStart)
		end := calendar.DateOnly(*req.RangeEnd)
		if end.Before(start) {
			return nil, fmt.Errorf("%w: %s > %s", calendar.ErrInvalidRange,
				calendar.DateKey(start), calendar.DateKey(end))
		}
		var days []calendar.Day
		for i := 0; ; i++ {
			d := start.AddDate(0, 0, i)
			if d.After(end) {
				break
			}
			days = append(days, s.makeDay(d, true, req.Now))
		}
		return days, nil

	default:
		return nil, calendar.ErrInvalidViewMode
	}
}

// monthGrid emits the full month containing ref, left-padded back to Monday
// and right-padded forward to Sunday. Padding days carry
// IsCurrentPeriod=false. Month and year rollovers are plain date arithmetic.
func (s *calendarServiceImpl) monthGrid(ref time.Time, now time.Time) []calendar.Day {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	gridStart := mondayOf(first)
	gridEnd := last.AddDate(0, 0, 7-isoWeekday(last))

	var days []calendar.Day
	for i := 0; ; i++ {
		// A fresh value per step; the cursor is never mutated in place.
		d := gridStart.AddDate(0, 0, i)
		if d.After(gridEnd) {
			break
		}
		days = append(days, s.makeDay(d, d.Month() == ref.Month() && d.Year() == ref.Year(), now))
	}
	return days
}

func (s *calendarServiceImpl) makeDay(date time.Time, currentPeriod bool, now time.Time) calendar.Day {
	day := calendar.Day{
		Date:            date,
		IsCurrentPeriod: currentPeriod,
		IsToday:         calendar.SameDate(date, now),
	}
	if name, ok := calendar.LookupHoliday(date); ok {
		day.IsHoliday = true
		day.HolidayName = &name
	} else if date.Weekday() == time.Sunday {
		day.IsHoliday = true
	}
	return day
}

// isoWeekday maps Sunday to 7 so weeks run Monday(1) through Sunday(7).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func mondayOf(t time.Time) time.Time {
	return t.AddDate(0, 0, -(isoWeekday(t) - 1))
}
