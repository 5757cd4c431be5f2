package calendar

import (
	"time"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/pkg/validator"
)

// GenerateDaysRequest describes one day-sequence generation call. Now is the
// injected wall clock used for IsToday tagging; handlers pass time.Now() so
// the generator itself stays deterministic.
type GenerateDaysRequest struct {
	ReferenceDate time.Time
	ViewMode      ViewMode
	RangeStart    *time.Time
	RangeEnd      *time.Time
	Now           time.Time
}

func (r *GenerateDaysRequest) Validate() error {
	var errs validator.ValidationErrors

	switch r.ViewMode {
	case ViewModeDay, ViewModeWeek, ViewModeMonth, ViewModeRange:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be one of: day, week, month, range",
		})
	}

	if r.ViewMode == ViewModeRange {
		if r.RangeStart == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date is required for range mode",
			})
		}
		if r.RangeEnd == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date is required for range mode",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewGenerateDaysRequest builds a generation request from the query-string
// shape shared by the grid endpoints. Empty mode defaults to month; empty
// date anchors on now. Dates must already be validated.
func NewGenerateDaysRequest(mode, date string, startDate, endDate *string, now time.Time) GenerateDaysRequest {
	req := GenerateDaysRequest{
		ViewMode:      ViewMode(mode),
		ReferenceDate: now,
		Now:           now,
	}
	if mode == "" {
		req.ViewMode = ViewModeMonth
	}
	if date != "" {
		if d, err := time.Parse("2006-01-02", date); err == nil {
			req.ReferenceDate = d
		}
	}
	if startDate != nil && *startDate != "" {
		if d, err := time.Parse("2006-01-02", *startDate); err == nil {
			req.RangeStart = &d
		}
	}
	if endDate != nil && *endDate != "" {
		if d, err := time.Parse("2006-01-02", *endDate); err == nil {
			req.RangeEnd = &d
		}
	}
	return req
}

// DayResponse is the wire shape of one calendar day cell.
type DayResponse struct {
	Date            string  `json:"date"`
	DayOfWeek       string  `json:"day_of_week"`
	IsCurrentPeriod bool    `json:"is_current_period"`
	IsToday         bool    `json:"is_today"`
	IsHoliday       bool    `json:"is_holiday"`
	HolidayName     *string `json:"holiday_name,omitempty"`
}

// ToDayResponse maps a Day entity to its wire shape.
func ToDayResponse(d Day) DayResponse {
	return DayResponse{
		Date:            DateKey(d.Date),
		DayOfWeek:       d.Date.Weekday().String(),
		IsCurrentPeriod: d.IsCurrentPeriod,
		IsToday:         d.IsToday,
		IsHoliday:       d.IsHoliday,
		HolidayName:     d.HolidayName,
	}
}
