package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/master/shift"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// GetByID implements shift.ShiftRepository.
func (s *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, branch_id, start_time, end_time, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var sh shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&sh.ID, &sh.Name, &sh.BranchID, &sh.StartTime, &sh.EndTime, &sh.CreatedAt, &sh.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by ID: %w", err)
	}

	return sh, nil
}

// List implements shift.ShiftRepository.
func (s *shiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, branch_id, start_time, end_time, created_at, updated_at
		FROM shifts
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		if err := rows.Scan(&sh.ID, &sh.Name, &sh.BranchID, &sh.StartTime, &sh.EndTime, &sh.CreatedAt, &sh.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}

	return shifts, rows.Err()
}
