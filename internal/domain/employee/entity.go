package employee

import (
	"time"
)

// Employment status values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID           string
	FullName     string
	Department   *string
	EmployeeType string
	Status       string
	BranchID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
