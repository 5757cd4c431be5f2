package attendance

import (
	"context"
)

// TimekeepingService defines the reporting operations built on top of the
// monthly roll-up calculator and the calendar grid.
type TimekeepingService interface {
	// GetMonthSummary rolls one employee's month of attendance rows into a
	// single summary.
	GetMonthSummary(ctx context.Context, req MonthSummaryRequest) (MonthSummaryResponse, error)

	// ListMonthSummaries rolls up a month for every active employee.
	ListMonthSummaries(ctx context.Context, req MonthSummariesRequest) (MonthSummariesResponse, error)

	// GetMonthProgress reports how far an employee is toward the monthly
	// minimum hour requirement.
	GetMonthProgress(ctx context.Context, req MonthProgressRequest) (MonthProgressResponse, error)

	// GetAttendanceGrid returns the calendar day skeleton with per-day,
	// per-branch attendance aggregates.
	GetAttendanceGrid(ctx context.Context, req AttendanceGridRequest) (AttendanceGridResponse, error)
}
