package attendance

import (
	"time"
)

// Attendance status values as stored by the timekeeping flow.
const (
	StatusScheduled  = "scheduled"
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusOnTime     = "ontime"
	StatusLate       = "late"
	StatusEarlyLeave = "early_leave"
	StatusAbsent     = "absent"
	StatusRejected   = "rejected"
	StatusCompleted  = "completed"
)

// Statuses lists every valid attendance status, for filter validation.
var Statuses = []string{
	StatusScheduled, StatusPending, StatusApproved, StatusOnTime,
	StatusLate, StatusEarlyLeave, StatusAbsent, StatusRejected, StatusCompleted,
}

type Attendance struct {
	ID            string
	EmployeeID    string
	BranchID      *string
	Date          time.Time
	CheckIn       *time.Time
	CheckOut      *time.Time
	HoursWorked   *float64
	OvertimeHours *float64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	EmployeeName *string
}

// WorkDate is the calendar date a record is aggregated under: the check-in
// date when a check-in exists, otherwise the record's own date field.
func (a Attendance) WorkDate() time.Time {
	if a.CheckIn != nil {
		return *a.CheckIn
	}
	return a.Date
}

// EmployeeMonthSummary is the per-employee monthly roll-up. Immutable once
// produced; consumed by reporting and export layers.
type EmployeeMonthSummary struct {
	EmployeeID            string
	Year                  int
	Month                 time.Month
	WorkDays              int
	TotalHours            float64
	OnTimeCount           int
	LateCount             int
	OvertimeHours         float64
	AttendanceRatePercent int
}
