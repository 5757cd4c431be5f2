package shift

import "context"

// ShiftRepository is the shift directory lookup.
type ShiftRepository interface {
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
}
