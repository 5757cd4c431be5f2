package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/master/branch"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type branchRepository struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepository{db: db}
}

// GetByID implements branch.BranchRepository.
func (b *branchRepository) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, name, is_office, created_at, updated_at
		FROM branches
		WHERE id = $1
	`

	var br branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(
		&br.ID, &br.Name, &br.IsOffice, &br.CreatedAt, &br.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch by ID: %w", err)
	}

	return br, nil
}

// List implements branch.BranchRepository.
func (b *branchRepository) List(ctx context.Context) ([]branch.Branch, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, name, is_office, created_at, updated_at
		FROM branches
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var br branch.Branch
		if err := rows.Scan(&br.ID, &br.Name, &br.IsOffice, &br.CreatedAt, &br.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, br)
	}

	return branches, rows.Err()
}
