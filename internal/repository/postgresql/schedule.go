package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/schedule"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (s *scheduleRepository) querySchedules(ctx context.Context, query string, args ...interface{}) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, s.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		var sched schedule.Schedule
		err := rows.Scan(
			&sched.ID, &sched.EmployeeID, &sched.BranchID, &sched.ShiftID, &sched.Date,
			&sched.CreatedAt, &sched.UpdatedAt,
			&sched.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, sched)
	}

	return schedules, rows.Err()
}

// ListByDateRange implements schedule.ScheduleRepository.
func (s *scheduleRepository) ListByDateRange(ctx context.Context, start, end time.Time, branchID *string) ([]schedule.Schedule, error) {
	query := `
		SELECT s.id, s.employee_id, s.branch_id, s.shift_id, s.date,
			   s.created_at, s.updated_at,
			   e.full_name AS employee_name
		FROM schedules s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.date >= $1 AND s.date <= $2
	`
	args := []interface{}{start, end}

	if branchID != nil && *branchID != "" {
		query += " AND s.branch_id = $3"
		args = append(args, *branchID)
	}
	query += " ORDER BY s.date, s.branch_id, s.shift_id NULLS LAST"

	return s.querySchedules(ctx, query, args...)
}

// ListByDate implements schedule.ScheduleRepository.
func (s *scheduleRepository) ListByDate(ctx context.Context, date time.Time) ([]schedule.Schedule, error) {
	query := `
		SELECT s.id, s.employee_id, s.branch_id, s.shift_id, s.date,
			   s.created_at, s.updated_at,
			   e.full_name AS employee_name
		FROM schedules s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.date = $1
		ORDER BY s.branch_id, s.shift_id NULLS LAST
	`
	return s.querySchedules(ctx, query, date)
}
