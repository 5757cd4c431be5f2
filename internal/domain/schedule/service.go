package schedule

import (
	"context"
)

// ScheduleService defines the schedule grid operations.
type ScheduleService interface {
	// GetScheduleGrid returns the calendar day skeleton with per-day cells
	// grouped by branch and shift.
	GetScheduleGrid(ctx context.Context, req ScheduleGridRequest) (ScheduleGridResponse, error)
}
