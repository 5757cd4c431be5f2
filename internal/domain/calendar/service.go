package calendar

// CalendarService produces the ordered day sequences backing schedule and
// attendance views.
type CalendarService interface {
	// GenerateDays expands a reference date into the exact day sequence for
	// the requested view mode, with holiday and today tagging applied.
	GenerateDays(req GenerateDaysRequest) ([]Day, error)
}
