package timekeeping

import (
	"testing"
	"time"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func marchRecord(day, hour, minute int, hours float64, status string) attendance.Attendance {
	checkIn := time.Date(2025, time.March, day, hour, minute, 0, 0, time.UTC)
	return attendance.Attendance{
		EmployeeID:  "emp-1",
		Date:        time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC),
		CheckIn:     &checkIn,
		HoursWorked: floatPtr(hours),
		Status:      status,
	}
}

func TestSummarizeMonth(t *testing.T) {
	// Employee with a full on-time day, then a late day split across a
	// regular shift and an overtime evening shift.
	late2 := marchRecord(4, 17, 0, 2.0, attendance.StatusLate)
	late2.OvertimeHours = floatPtr(2.0)
	records := []attendance.Attendance{
		marchRecord(3, 8, 0, 8.5, attendance.StatusOnTime),
		marchRecord(4, 8, 30, 7.8, attendance.StatusLate),
		late2,
	}

	summary, err := SummarizeMonth("emp-1", 2025, time.March, records, attendance.DefaultSummaryPolicy())
	require.NoError(t, err)

	assert.Equal(t, "emp-1", summary.EmployeeID)
	assert.Equal(t, 2025, summary.Year)
	assert.Equal(t, time.March, summary.Month)
	assert.Equal(t, 2, summary.WorkDays)
	// Each day capped at 8: min(8.5, 8) + min(9.8, 8).
	assert.InDelta(t, 16.0, summary.TotalHours, 0.001)
	assert.InDelta(t, 2.0, summary.OvertimeHours, 0.001)
	assert.Equal(t, 1, summary.OnTimeCount)
	assert.Equal(t, 1, summary.LateCount)
	assert.Equal(t, 50, summary.AttendanceRatePercent)
}

func TestSummarizeMonth_SplitShiftCountsOneWorkDay(t *testing.T) {
	records := []attendance.Attendance{
		marchRecord(10, 8, 0, 4.0, attendance.StatusOnTime),
		marchRecord(10, 14, 0, 4.0, attendance.StatusOnTime),
	}

	summary, err := SummarizeMonth("emp-1", 2025, time.March, records, attendance.DefaultSummaryPolicy())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.WorkDays)
	assert.InDelta(t, 8.0, summary.TotalHours, 0.001)
	assert.Equal(t, 1, summary.OnTimeCount)
	assert.Equal(t, 100, summary.AttendanceRatePercent)
}

func TestSummarizeMonth_DailyCapDoesNotTouchOvertime(t *testing.T) {
	rec := marchRecord(10, 8, 0, 10.0, attendance.StatusOnTime)
	rec.OvertimeHours = floatPtr(1.5)

	summary, err := SummarizeMonth("emp-1", 2025, time.March, []attendance.Attendance{rec}, attendance.DefaultSummaryPolicy())
	require.NoError(t, err)

	assert.InDelta(t, 8.0, summary.TotalHours, 0.001)
	assert.InDelta(t, 1.5, summary.OvertimeHours, 0.001)
}

func TestSummarizeMonth_PartialDayBelowThreshold(t *testing.T) {
	// 3 hours is below the 7-hour work-day threshold but still contributes
	// its capped hours to the total.
	records := []attendance.Attendance{
		marchRecord(10, 8, 0, 3.0, attendance.StatusOnTime),
	}

	summary, err := SummarizeMonth("emp-1", 2025, time.March, records, attendance.DefaultSummaryPolicy())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.WorkDays)
	assert.InDelta(t, 3.0, summary.TotalHours, 0.001)
	assert.Equal(t, 0, summary.AttendanceRatePercent)
}

func TestSummarizeMonth_MixedStatusDayRaisesBothCounters(t *testing.T) {
	records := []attendance.Attendance{
		marchRecord(10, 8, 0, 4.0, attendance.StatusOnTime),
		marchRecord(10, 14, 0, 4.0, attendance.StatusLate),
	}

	summary, err := SummarizeMonth("emp-1", 2025, time.March, records, attendance.DefaultSummaryPolicy())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.WorkDays)
	assert.Equal(t, 1, summary.OnTimeCount)
	assert.Equal(t, 1, summary.LateCount)
}

func TestSummarizeMonth_ApprovedCountsAsOnTime(t *testing.T) {
	records := []attendance.Attendance{
		marchRecord(10, 8, 0, 8.0, attendance.StatusApproved),
	}

	summary, err := SummarizeMonth("emp-1", 2025, time.March, records, attendance.DefaultSummaryPolicy())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.OnTimeCount)
	assert.Equal(t, 0, summary.LateCount)
}

func TestSummarizeMonth_ZeroRecords(t *testing.T) {
	summary, err := SummarizeMonth("emp-1", 2025, time.March, nil, attendance.DefaultSummaryPolicy())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.WorkDays)
	assert.Zero(t, summary.TotalHours)
	assert.Equal(t, 0, summary.OnTimeCount)
	assert.Equal(t, 0, summary.LateCount)
	assert.Zero(t, summary.OvertimeHours)
	assert.Equal(t, 0, summary.AttendanceRatePercent)
}

func TestSummarizeMonth_ClampsNullAndNegativeHours(t *testing.T) {
	negative := marchRecord(10, 8, 0, 8.0, attendance.StatusOnTime)
	negative.HoursWorked = floatPtr(-4.0)
	negative.OvertimeHours = floatPtr(-1.0)
	missing := marchRecord(11, 8, 0, 0, attendance.StatusOnTime)
	missing.HoursWorked = nil
	missing.OvertimeHours = nil

	summary, err := SummarizeMonth("emp-1", 2025, time.March, []attendance.Attendance{negative, missing}, attendance.DefaultSummaryPolicy())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.WorkDays)
	assert.Zero(t, summary.TotalHours)
	assert.Zero(t, summary.OvertimeHours)
}

func TestSummarizeMonth_GroupsByCheckInDate(t *testing.T) {
	// Record dated Mar 10 but checked in on Mar 11: the check-in date wins.
	rec := attendance.Attendance{
		EmployeeID:  "emp-1",
		Date:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckIn:     timePtr(time.Date(2025, time.March, 11, 8, 0, 0, 0, time.UTC)),
		HoursWorked: floatPtr(4.0),
		Status:      attendance.StatusOnTime,
	}
	sameDay := marchRecord(11, 14, 0, 4.0, attendance.StatusOnTime)

	summary, err := SummarizeMonth("emp-1", 2025, time.March, []attendance.Attendance{rec, sameDay}, attendance.DefaultSummaryPolicy())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.WorkDays)
	assert.InDelta(t, 8.0, summary.TotalHours, 0.001)
}

func TestSummarizeMonth_InvalidPolicy(t *testing.T) {
	policy := attendance.SummaryPolicy{DailyHourCap: 0, MinDailyHoursForWorkDay: 7}

	_, err := SummarizeMonth("emp-1", 2025, time.March, nil, policy)
	assert.ErrorIs(t, err, attendance.ErrInvalidPolicy)
}

func TestMonthProgress(t *testing.T) {
	tests := []struct {
		name            string
		totalHours      float64
		minMonthlyHours float64
		want            int
	}{
		{"half way", 104, 208, 50},
		{"complete", 208, 208, 100},
		{"over target clamps to 100", 250, 208, 100},
		{"zero hours", 0, 208, 0},
		{"negative hours clamps to 0", -10, 208, 0},
		{"zero target", 104, 0, 0},
		{"rounds to nearest", 1, 3, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthProgress(tt.totalHours, tt.minMonthlyHours))
		})
	}
}
