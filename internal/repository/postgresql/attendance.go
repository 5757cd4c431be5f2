package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/attendance"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.branch_id, a.date,
	a.check_in, a.check_out, a.hours_worked, a.overtime_hours,
	a.status, a.created_at, a.updated_at,
	e.full_name AS employee_name
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.BranchID, &att.Date,
		&att.CheckIn, &att.CheckOut, &att.HoursWorked, &att.OvertimeHours,
		&att.Status, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
	)
	return att, err
}

func (a *attendanceRepository) queryAttendances(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, rows.Err()
}

// ListByDateRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDateRange(ctx context.Context, start, end time.Time, branchID *string) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date >= $1 AND a.date <= $2
	`
	args := []interface{}{start, end}

	if branchID != nil && *branchID != "" {
		query += " AND a.branch_id = $3"
		args = append(args, *branchID)
	}
	query += " ORDER BY a.date, a.check_in NULLS LAST"

	return a.queryAttendances(ctx, query, args...)
}

// ListByEmployeeAndMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date, a.check_in NULLS LAST
	`
	return a.queryAttendances(ctx, query, employeeID, start, end)
}

// ListByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]attendance.Attendance, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.employee_id, a.date, a.check_in NULLS LAST
	`
	return a.queryAttendances(ctx, query, start, end)
}

// HasRecordOnDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) HasRecordOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM attendances
			WHERE employee_id = $1
			  AND date = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance record: %w", err)
	}

	return exists, nil
}

// BulkCreateAbsences implements attendance.AttendanceRepository.
func (a *attendanceRepository) BulkCreateAbsences(ctx context.Context, absences []attendance.Attendance) error {
	if len(absences) == 0 {
		return nil
	}

	return WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO attendances (id, employee_id, branch_id, date, status, hours_worked)
			VALUES ($1, $2, $3, $4, $5, 0)
			ON CONFLICT (employee_id, date) DO NOTHING
		`
		for _, absence := range absences {
			if _, err := tx.Exec(ctx, query,
				absence.ID,
				absence.EmployeeID,
				absence.BranchID,
				absence.Date,
				absence.Status,
			); err != nil {
				return fmt.Errorf("failed to insert absence for employee %s: %w", absence.EmployeeID, err)
			}
		}
		return nil
	})
}
