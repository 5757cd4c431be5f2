package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidPolicy      = errors.New("summary policy thresholds must be positive")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
