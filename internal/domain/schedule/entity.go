package schedule

import (
	"time"
)

// Schedule is one employee/branch/shift assignment on a single calendar date.
type Schedule struct {
	ID         string
	EmployeeID string
	BranchID   string
	ShiftID    *string
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// GridKey is the grouping key used by the schedule grid: branch plus shift.
// Schedules without a shift fall into the branch's "unassigned" bucket
// instead of erroring.
func (s Schedule) GridKey() string {
	shift := "unassigned"
	if s.ShiftID != nil && *s.ShiftID != "" {
		shift = *s.ShiftID
	}
	return s.BranchID + "_" + shift
}
