package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound = errors.New("schedule record not found")
)
