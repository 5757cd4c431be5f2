package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/config"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/attendance"
	appHTTP "github.com/erpxuongcaphe/onebiz-sub002/internal/handler/http"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/pkg/cron"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/pkg/database"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/repository/postgresql"
	calendarService "github.com/erpxuongcaphe/onebiz-sub002/internal/service/calendar"
	scheduleService "github.com/erpxuongcaphe/onebiz-sub002/internal/service/schedule"
	timekeepingService "github.com/erpxuongcaphe/onebiz-sub002/internal/service/timekeeping"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)

	policy := attendance.SummaryPolicy{
		DailyHourCap:            cfg.Timekeeping.DailyHourCap,
		MinMonthlyHours:         cfg.Timekeeping.MinMonthlyHours,
		MinDailyHoursForWorkDay: cfg.Timekeeping.MinDailyHoursForWorkDay,
	}

	calendarSvc := calendarService.NewCalendarService()
	timekeepingSvc := timekeepingService.NewTimekeepingService(attendanceRepo, employeeRepo, calendarSvc, policy)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, branchRepo, shiftRepo, calendarSvc)

	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	timekeepingHandler := appHTTP.NewTimekeepingHandler(timekeepingSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		calendarHandler,
		scheduleHandler,
		timekeepingHandler,
	)

	scheduler := cron.NewScheduler()
	absenceJobs := cron.NewAbsenceJobs(attendanceRepo, scheduleRepo)
	absenceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
