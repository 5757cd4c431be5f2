package shift

import "time"

// Shift is a named work period, optionally tied to a branch.
type Shift struct {
	ID        string
	Name      string
	BranchID  *string
	StartTime string // "15:04"
	EndTime   string // "15:04"
	CreatedAt time.Time
	UpdatedAt time.Time
}
