package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// aggregation services fetch whole periods in one batch and do all roll-up
// work in memory.
type AttendanceRepository interface {
	// ListByDateRange retrieves all attendance records with date in
	// [start, end] inclusive, optionally restricted to one branch.
	ListByDateRange(ctx context.Context, start, end time.Time, branchID *string) ([]Attendance, error)

	// ListByEmployeeAndMonth retrieves one employee's records for a month.
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)

	// ListByMonth retrieves every employee's records for a month.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Attendance, error)

	// HasRecordOnDate reports whether an employee already has any record
	// (worked or absent) on a calendar date. Used by the absence job.
	HasRecordOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// BulkCreateAbsences inserts absence records produced by the nightly job.
	BulkCreateAbsences(ctx context.Context, absences []Attendance) error
}
