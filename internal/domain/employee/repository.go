package employee

import (
	"context"
)

// EmployeeRepository is the employee directory lookup consumed by the
// aggregation services.
type EmployeeRepository interface {
	// GetByID retrieves a single employee.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive retrieves all employees with active employment status.
	ListActive(ctx context.Context) ([]Employee, error)
}
