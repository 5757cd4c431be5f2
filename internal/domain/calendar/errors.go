package calendar

import "errors"

// Calendar domain errors
var (
	ErrInvalidRange    = errors.New("range end date must not be before range start date")
	ErrInvalidViewMode = errors.New("unknown calendar view mode")
)
