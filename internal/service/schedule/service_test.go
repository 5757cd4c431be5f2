package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/master/branch"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/master/shift"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/schedule"
	calendarService "github.com/erpxuongcaphe/onebiz-sub002/internal/service/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleRepo struct {
	records []schedule.Schedule
}

func (f *fakeScheduleRepo) ListByDateRange(ctx context.Context, start, end time.Time, branchID *string) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	for _, rec := range f.records {
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		if branchID != nil && rec.BranchID != *branchID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListByDate(ctx context.Context, date time.Time) ([]schedule.Schedule, error) {
	return f.ListByDateRange(ctx, date, date, nil)
}

type fakeBranchRepo struct {
	branches []branch.Branch
}

func (f *fakeBranchRepo) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	for _, b := range f.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return branch.Branch{}, branch.ErrBranchNotFound
}

func (f *fakeBranchRepo) List(ctx context.Context) ([]branch.Branch, error) {
	return f.branches, nil
}

type fakeShiftRepo struct {
	shifts []shift.Shift
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	for _, s := range f.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) List(ctx context.Context) ([]shift.Shift, error) {
	return f.shifts, nil
}

func strPtr(s string) *string { return &s }

func scheduleOn(employeeID, branchID string, shiftID *string, day int) schedule.Schedule {
	return schedule.Schedule{
		ID:         employeeID + "-" + branchID,
		EmployeeID: employeeID,
		BranchID:   branchID,
		ShiftID:    shiftID,
		Date:       time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC),
	}
}

func newTestScheduleService(schedRepo *fakeScheduleRepo) schedule.ScheduleService {
	branchRepo := &fakeBranchRepo{branches: []branch.Branch{
		{ID: "branch-a", Name: "Chi nhánh Quận 1", IsOffice: false},
		{ID: "branch-b", Name: "Văn phòng", IsOffice: true},
	}}
	shiftRepo := &fakeShiftRepo{shifts: []shift.Shift{
		{ID: "shift-1", Name: "Ca sáng", StartTime: "06:00", EndTime: "14:00"},
		{ID: "shift-2", Name: "Ca chiều", StartTime: "14:00", EndTime: "22:00"},
	}}
	return NewScheduleService(schedRepo, branchRepo, shiftRepo, calendarService.NewCalendarService())
}

func TestScheduleService_GetScheduleGrid(t *testing.T) {
	ctx := context.Background()
	schedRepo := &fakeScheduleRepo{records: []schedule.Schedule{
		scheduleOn("emp-1", "branch-a", strPtr("shift-1"), 10),
		scheduleOn("emp-2", "branch-a", strPtr("shift-1"), 10),
		scheduleOn("emp-3", "branch-a", strPtr("shift-2"), 10),
		scheduleOn("emp-4", "branch-b", nil, 10),
	}}
	svc := newTestScheduleService(schedRepo)

	resp, err := svc.GetScheduleGrid(ctx, schedule.ScheduleGridRequest{
		Mode: "week", Date: "2025-03-10",
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 7)
	monday := resp.Days[0]
	assert.Equal(t, "2025-03-10", monday.Date)
	require.Len(t, monday.Cells, 3)

	morning := monday.Cells[0]
	assert.Equal(t, "branch-a_shift-1", morning.Key)
	assert.Equal(t, "Chi nhánh Quận 1", morning.BranchName)
	require.NotNil(t, morning.ShiftName)
	assert.Equal(t, "Ca sáng", *morning.ShiftName)
	assert.Equal(t, 2, morning.Count)
	assert.Equal(t, 2, morning.UniqueEmployees)

	afternoon := monday.Cells[1]
	assert.Equal(t, "branch-a_shift-2", afternoon.Key)
	assert.Equal(t, 1, afternoon.Count)

	// No shift assigned: bucketed under the branch's unassigned key.
	unassigned := monday.Cells[2]
	assert.Equal(t, "branch-b_unassigned", unassigned.Key)
	assert.Equal(t, "Văn phòng", unassigned.BranchName)
	assert.Nil(t, unassigned.ShiftID)
	assert.Nil(t, unassigned.ShiftName)

	for _, day := range resp.Days[1:] {
		assert.Empty(t, day.Cells)
	}
}

func TestScheduleService_GetScheduleGrid_BranchFilter(t *testing.T) {
	ctx := context.Background()
	schedRepo := &fakeScheduleRepo{records: []schedule.Schedule{
		scheduleOn("emp-1", "branch-a", strPtr("shift-1"), 10),
		scheduleOn("emp-2", "branch-b", nil, 10),
	}}
	svc := newTestScheduleService(schedRepo)

	branchA := "branch-a"
	resp, err := svc.GetScheduleGrid(ctx, schedule.ScheduleGridRequest{
		Mode: "day", Date: "2025-03-10", BranchID: &branchA,
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	require.Len(t, resp.Days[0].Cells, 1)
	assert.Equal(t, "branch-a", resp.Days[0].Cells[0].BranchID)
}

func TestScheduleService_GetScheduleGrid_MonthPaddingDaysIncluded(t *testing.T) {
	ctx := context.Background()
	// Feb 24 2025 is a padding day on the March month grid.
	schedRepo := &fakeScheduleRepo{records: []schedule.Schedule{
		{
			ID:         "s1",
			EmployeeID: "emp-1",
			BranchID:   "branch-a",
			ShiftID:    strPtr("shift-1"),
			Date:       time.Date(2025, time.February, 24, 0, 0, 0, 0, time.UTC),
		},
	}}
	svc := newTestScheduleService(schedRepo)

	resp, err := svc.GetScheduleGrid(ctx, schedule.ScheduleGridRequest{
		Mode: "month", Date: "2025-03-15",
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 42)
	first := resp.Days[0]
	assert.Equal(t, "2025-02-24", first.Date)
	assert.False(t, first.IsCurrentPeriod)
	require.Len(t, first.Cells, 1)
	assert.Equal(t, "branch-a_shift-1", first.Cells[0].Key)
}

func TestScheduleService_GetScheduleGrid_BadDate(t *testing.T) {
	svc := newTestScheduleService(&fakeScheduleRepo{})

	_, err := svc.GetScheduleGrid(context.Background(), schedule.ScheduleGridRequest{
		Mode: "day", Date: "not-a-date",
	})
	assert.Error(t, err)
}
