package timekeeping

import (
	"context"
	"fmt"
	"time"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/attendance"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/calendar"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/employee"
	"golang.org/x/sync/errgroup"
)

const unassignedBranchKey = "unassigned"

type timekeepingServiceImpl struct {
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	calendarService calendar.CalendarService
	policy          attendance.SummaryPolicy
}

func NewTimekeepingService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	calendarService calendar.CalendarService,
	policy attendance.SummaryPolicy,
) attendance.TimekeepingService {
	return &timekeepingServiceImpl{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		calendarService: calendarService,
		policy:          policy,
	}
}

// GetMonthSummary implements attendance.TimekeepingService.
func (s *timekeepingServiceImpl) GetMonthSummary(ctx context.Context, req attendance.MonthSummaryRequest) (attendance.MonthSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthSummaryResponse{}, err
	}

	var (
		emp     employee.Employee
		records []attendance.Attendance
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emp, err = s.employeeRepo.GetByID(gCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByEmployeeAndMonth(gCtx, req.EmployeeID, req.Year, time.Month(req.Month))
		if err != nil {
			return fmt.Errorf("failed to get attendance records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return attendance.MonthSummaryResponse{}, err
	}

	summary, err := SummarizeMonth(req.EmployeeID, req.Year, time.Month(req.Month), records, s.policy)
	if err != nil {
		return attendance.MonthSummaryResponse{}, err
	}

	resp := toSummaryResponse(summary)
	resp.EmployeeName = emp.FullName
	return resp, nil
}

// ListMonthSummaries implements attendance.TimekeepingService.
func (s *timekeepingServiceImpl) ListMonthSummaries(ctx context.Context, req attendance.MonthSummariesRequest) (attendance.MonthSummariesResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthSummariesResponse{}, err
	}

	var (
		employees []employee.Employee
		records   []attendance.Attendance
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.ListActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByMonth(gCtx, req.Year, time.Month(req.Month))
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return attendance.MonthSummariesResponse{}, err
	}

	byEmployee := make(map[string][]attendance.Attendance, len(employees))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	resp := attendance.MonthSummariesResponse{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: periodStart.Format("2006-01-02"),
		PeriodEnd:   periodEnd.Format("2006-01-02"),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Summaries:   make([]attendance.MonthSummaryResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		summary, err := SummarizeMonth(emp.ID, req.Year, time.Month(req.Month), byEmployee[emp.ID], s.policy)
		if err != nil {
			return attendance.MonthSummariesResponse{}, err
		}
		sr := toSummaryResponse(summary)
		sr.EmployeeName = emp.FullName
		resp.Summaries = append(resp.Summaries, sr)
	}

	return resp, nil
}

// GetMonthProgress implements attendance.TimekeepingService.
func (s *timekeepingServiceImpl) GetMonthProgress(ctx context.Context, req attendance.MonthProgressRequest) (attendance.MonthProgressResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthProgressResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeAndMonth(ctx, req.EmployeeID, req.Year, time.Month(req.Month))
	if err != nil {
		return attendance.MonthProgressResponse{}, fmt.Errorf("failed to get attendance records: %w", err)
	}

	summary, err := SummarizeMonth(req.EmployeeID, req.Year, time.Month(req.Month), records, s.policy)
	if err != nil {
		return attendance.MonthProgressResponse{}, err
	}

	return attendance.MonthProgressResponse{
		EmployeeID:      req.EmployeeID,
		Period:          fmt.Sprintf("%04d-%02d", req.Year, req.Month),
		TotalHours:      summary.TotalHours,
		MinMonthlyHours: s.policy.MinMonthlyHours,
		PercentComplete: MonthProgress(summary.TotalHours, s.policy.MinMonthlyHours),
	}, nil
}

// GetAttendanceGrid implements attendance.TimekeepingService.
func (s *timekeepingServiceImpl) GetAttendanceGrid(ctx context.Context, req attendance.AttendanceGridRequest) (attendance.AttendanceGridResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceGridResponse{}, err
	}

	daysReq := calendar.NewGenerateDaysRequest(req.Mode, req.Date, req.StartDate, req.EndDate, time.Now())
	days, err := s.calendarService.GenerateDays(daysReq)
	if err != nil {
		return attendance.AttendanceGridResponse{}, err
	}
	if len(days) == 0 {
		return attendance.AttendanceGridResponse{Days: []attendance.AttendanceGridDay{}}, nil
	}

	records, err := s.attendanceRepo.ListByDateRange(ctx, days[0].Date, days[len(days)-1].Date, req.BranchID)
	if err != nil {
		return attendance.AttendanceGridResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	grouped := calendar.GroupByDayAndKey(days, records,
		func(rec attendance.Attendance) time.Time { return rec.Date },
		func(rec attendance.Attendance) string {
			if rec.BranchID == nil || *rec.BranchID == "" {
				return unassignedBranchKey
			}
			return *rec.BranchID
		},
	)

	resp := attendance.AttendanceGridResponse{Days: make([]attendance.AttendanceGridDay, 0, len(days))}
	for _, day := range days {
		gridDay := attendance.AttendanceGridDay{
			DayResponse: calendar.ToDayResponse(day),
			Cells:       []attendance.AttendanceGridCell{},
		}
		group := grouped[calendar.DateKey(day.Date)]
		for _, key := range group.Keys {
			kg := group.Groups[key]
			seen := make(map[string]bool, kg.Count)
			for _, rec := range kg.Items {
				seen[rec.EmployeeID] = true
			}
			gridDay.Cells = append(gridDay.Cells, attendance.AttendanceGridCell{
				BranchID:        key,
				Count:           kg.Count,
				UniqueEmployees: len(seen),
			})
		}
		resp.Days = append(resp.Days, gridDay)
	}

	return resp, nil
}

func toSummaryResponse(s attendance.EmployeeMonthSummary) attendance.MonthSummaryResponse {
	return attendance.MonthSummaryResponse{
		EmployeeID:            s.EmployeeID,
		PeriodMonth:           int(s.Month),
		PeriodYear:            s.Year,
		WorkDays:              s.WorkDays,
		TotalHours:            s.TotalHours,
		OnTimeCount:           s.OnTimeCount,
		LateCount:             s.LateCount,
		OvertimeHours:         s.OvertimeHours,
		AttendanceRatePercent: s.AttendanceRatePercent,
	}
}
