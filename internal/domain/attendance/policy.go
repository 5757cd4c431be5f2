package attendance

import "fmt"

// SummaryPolicy supplies the administrative thresholds for monthly roll-ups.
// The daily cap and the work-day threshold are independent knobs: a day can
// contribute capped hours without counting as a full work day.
type SummaryPolicy struct {
	// DailyHourCap limits one day's contribution to TotalHours. Overtime is
	// tracked separately and never capped.
	DailyHourCap float64

	// MinMonthlyHours is the administrative monthly minimum, used only for
	// the month-progress view.
	MinMonthlyHours float64

	// MinDailyHoursForWorkDay is the threshold at or above which a day
	// counts as one work day.
	MinDailyHoursForWorkDay float64
}

// DefaultSummaryPolicy mirrors the standing company policy: 8-hour daily cap,
// 26 working days of 8 hours per month, 7-hour work-day threshold.
func DefaultSummaryPolicy() SummaryPolicy {
	return SummaryPolicy{
		DailyHourCap:            8.0,
		MinMonthlyHours:         208.0,
		MinDailyHoursForWorkDay: 7.0,
	}
}

func (p SummaryPolicy) Validate() error {
	if p.DailyHourCap <= 0 {
		return fmt.Errorf("%w: daily hour cap %.2f", ErrInvalidPolicy, p.DailyHourCap)
	}
	if p.MinDailyHoursForWorkDay <= 0 {
		return fmt.Errorf("%w: minimum daily hours %.2f", ErrInvalidPolicy, p.MinDailyHoursForWorkDay)
	}
	return nil
}
