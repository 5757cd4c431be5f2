package branch

import "context"

// BranchRepository is the branch directory lookup.
type BranchRepository interface {
	GetByID(ctx context.Context, id string) (Branch, error)
	List(ctx context.Context) ([]Branch, error)
}
