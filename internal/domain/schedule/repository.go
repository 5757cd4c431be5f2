package schedule

import (
	"context"
	"time"
)

// ScheduleRepository defines data access for schedule assignments.
type ScheduleRepository interface {
	// ListByDateRange retrieves all schedule records with date in
	// [start, end] inclusive, optionally restricted to one branch.
	ListByDateRange(ctx context.Context, start, end time.Time, branchID *string) ([]Schedule, error)

	// ListByDate retrieves every schedule record for one calendar date.
	ListByDate(ctx context.Context, date time.Time) ([]Schedule, error)
}
