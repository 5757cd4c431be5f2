package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/calendar"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/master/branch"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/master/shift"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/schedule"
	"golang.org/x/sync/errgroup"
)

type scheduleServiceImpl struct {
	scheduleRepo    schedule.ScheduleRepository
	branchRepo      branch.BranchRepository
	shiftRepo       shift.ShiftRepository
	calendarService calendar.CalendarService
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	branchRepo branch.BranchRepository,
	shiftRepo shift.ShiftRepository,
	calendarService calendar.CalendarService,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo:    scheduleRepo,
		branchRepo:      branchRepo,
		shiftRepo:       shiftRepo,
		calendarService: calendarService,
	}
}

// GetScheduleGrid implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetScheduleGrid(ctx context.Context, req schedule.ScheduleGridRequest) (schedule.ScheduleGridResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleGridResponse{}, err
	}

	daysReq := calendar.NewGenerateDaysRequest(req.Mode, req.Date, req.StartDate, req.EndDate, time.Now())
	days, err := s.calendarService.GenerateDays(daysReq)
	if err != nil {
		return schedule.ScheduleGridResponse{}, err
	}
	if len(days) == 0 {
		return schedule.ScheduleGridResponse{Days: []schedule.ScheduleGridDay{}}, nil
	}

	// One batched fetch per collaborator for the whole grid, including
	// padding days, so cells on adjacent-month dates still render.
	var (
		records  []schedule.Schedule
		branches []branch.Branch
		shifts   []shift.Shift
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.scheduleRepo.ListByDateRange(gCtx, days[0].Date, days[len(days)-1].Date, req.BranchID)
		if err != nil {
			return fmt.Errorf("failed to list schedules: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		branches, err = s.branchRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list branches: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		shifts, err = s.shiftRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list shifts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return schedule.ScheduleGridResponse{}, err
	}

	branchNames := make(map[string]string, len(branches))
	for _, b := range branches {
		branchNames[b.ID] = b.Name
	}
	shiftNames := make(map[string]string, len(shifts))
	for _, sh := range shifts {
		shiftNames[sh.ID] = sh.Name
	}

	grouped := calendar.GroupByDayAndKey(days, records,
		func(rec schedule.Schedule) time.Time { return rec.Date },
		schedule.Schedule.GridKey,
	)

	resp := schedule.ScheduleGridResponse{Days: make([]schedule.ScheduleGridDay, 0, len(days))}
	for _, day := range days {
		gridDay := schedule.ScheduleGridDay{
			DayResponse: calendar.ToDayResponse(day),
			Cells:       []schedule.ScheduleGridCell{},
		}
		group := grouped[calendar.DateKey(day.Date)]
		for _, key := range group.Keys {
			kg := group.Groups[key]
			gridDay.Cells = append(gridDay.Cells, s.makeCell(key, kg.Items, branchNames, shiftNames))
		}
		resp.Days = append(resp.Days, gridDay)
	}

	return resp, nil
}

func (s *scheduleServiceImpl) makeCell(key string, items []schedule.Schedule, branchNames, shiftNames map[string]string) schedule.ScheduleGridCell {
	cell := schedule.ScheduleGridCell{
		Key:   key,
		Count: len(items),
	}

	seen := make(map[string]bool, len(items))
	for _, rec := range items {
		seen[rec.EmployeeID] = true
	}
	cell.UniqueEmployees = len(seen)

	if len(items) > 0 {
		first := items[0]
		cell.BranchID = first.BranchID
		cell.BranchName = branchNames[first.BranchID]
		if first.ShiftID != nil && *first.ShiftID != "" {
			cell.ShiftID = first.ShiftID
			if name, ok := shiftNames[*first.ShiftID]; ok {
				cell.ShiftName = &name
			}
		}
	} else if i := strings.Index(key, "_"); i > 0 {
		cell.BranchID = key[:i]
		cell.BranchName = branchNames[key[:i]]
	}

	return cell
}
