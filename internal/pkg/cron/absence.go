package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/attendance"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/calendar"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/schedule"
	"github.com/google/uuid"
)

type AbsenceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.ScheduleRepository
}

func NewAbsenceJobs(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
) *AbsenceJobs {
	return &AbsenceJobs{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
	}
}

func (j *AbsenceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills absence records for the previous day: every
// employee scheduled yesterday with no attendance row of any kind gets one
// absent record. Sundays and public holidays are skipped entirely.
func (j *AbsenceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := calendar.DateOnly(time.Now().UTC().AddDate(0, 0, -1))
	if calendar.IsRestDay(yesterday) {
		slog.Info("Cron: Skipping absence marking on rest day", "date", calendar.DateKey(yesterday))
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job", "date", calendar.DateKey(yesterday))

	schedules, err := j.scheduleRepo.ListByDate(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to list schedules: %w", err)
	}

	var absences []attendance.Attendance
	seen := make(map[string]bool, len(schedules))

	for _, sched := range schedules {
		// An employee may hold several shift assignments on one date;
		// at most one absence record is created.
		if seen[sched.EmployeeID] {
			continue
		}
		seen[sched.EmployeeID] = true

		hasRecord, err := j.attendanceRepo.HasRecordOnDate(ctx, sched.EmployeeID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to check attendance record",
				"employee_id", sched.EmployeeID,
				"error", err)
			continue
		}
		if hasRecord {
			continue
		}

		branchID := sched.BranchID
		absences = append(absences, attendance.Attendance{
			ID:         uuid.NewString(),
			EmployeeID: sched.EmployeeID,
			BranchID:   &branchID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		})
	}

	if len(absences) > 0 {
		if err := j.attendanceRepo.BulkCreateAbsences(ctx, absences); err != nil {
			return fmt.Errorf("failed to create absence records: %w", err)
		}
	}

	slog.Info("Cron: Marked absent employees", "count", len(absences))
	return nil
}
