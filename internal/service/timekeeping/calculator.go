package timekeeping

import (
	"math"
	"time"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/attendance"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/calendar"
)

// dayAggregate accumulates all of an employee's records sharing one work date.
type dayAggregate struct {
	rawHours float64
	overtime float64
	statuses map[string]bool
}

// SummarizeMonth collapses one employee's attendance rows for a month into a
// single summary. Callers are responsible for restricting records to the
// target employee and month; the summarizer assumes every row is in scope.
//
// Records are grouped by work date (check-in date when present, otherwise the
// record's date field), so split shifts on one date count as one work day.
// Each date-group contributes min(raw hours, cap) to TotalHours; overtime is
// summed uncapped. A group raises the on-time counter when any of its rows is
// ontime or approved, and the late counter when any row is late. A
// mixed-status date can raise both.
func SummarizeMonth(employeeID string, year int, month time.Month, records []attendance.Attendance, policy attendance.SummaryPolicy) (attendance.EmployeeMonthSummary, error) {
	if err := policy.Validate(); err != nil {
		return attendance.EmployeeMonthSummary{}, err
	}

	groups := make(map[string]*dayAggregate)
	for _, rec := range records {
		key := calendar.DateKey(rec.WorkDate())
		agg, ok := groups[key]
		if !ok {
			agg = &dayAggregate{statuses: make(map[string]bool)}
			groups[key] = agg
		}
		agg.rawHours += clampHours(rec.HoursWorked)
		agg.overtime += clampHours(rec.OvertimeHours)
		if rec.Status != "" {
			agg.statuses[rec.Status] = true
		}
	}

	summary := attendance.EmployeeMonthSummary{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	}
	for _, agg := range groups {
		if agg.rawHours >= policy.MinDailyHoursForWorkDay {
			summary.WorkDays++
		}
		summary.TotalHours += math.Min(agg.rawHours, policy.DailyHourCap)
		summary.OvertimeHours += agg.overtime
		if agg.statuses[attendance.StatusOnTime] || agg.statuses[attendance.StatusApproved] {
			summary.OnTimeCount++
		}
		if agg.statuses[attendance.StatusLate] {
			summary.LateCount++
		}
	}

	if summary.WorkDays > 0 {
		rate := float64(summary.OnTimeCount) / float64(summary.WorkDays) * 100
		summary.AttendanceRatePercent = int(math.Round(rate))
	}

	return summary, nil
}

// MonthProgress is the derived target-completion percentage for the current
// month progress view. It is a caller convenience, never stored on the
// summary, and must not be confused with AttendanceRatePercent.
func MonthProgress(totalHours, minMonthlyHours float64) int {
	if minMonthlyHours <= 0 {
		return 0
	}
	ratio := totalHours / minMonthlyHours
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * 100))
}

// clampHours treats null, negative, and NaN hour fields as zero contribution.
func clampHours(v *float64) float64 {
	if v == nil || *v < 0 || math.IsNaN(*v) {
		return 0
	}
	return *v
}
