package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/attendance"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimekeepingHandler interface {
	ListSummaries(w http.ResponseWriter, r *http.Request)
	GetEmployeeSummary(w http.ResponseWriter, r *http.Request)
	GetEmployeeProgress(w http.ResponseWriter, r *http.Request)
	GetGrid(w http.ResponseWriter, r *http.Request)
}

type timekeepingHandlerImpl struct {
	timekeepingService attendance.TimekeepingService
}

func NewTimekeepingHandler(timekeepingService attendance.TimekeepingService) TimekeepingHandler {
	return &timekeepingHandlerImpl{
		timekeepingService: timekeepingService,
	}
}

// parsePeriod reads month/year query params, defaulting to the current month.
func parsePeriod(r *http.Request) (month int, year int) {
	now := time.Now()
	month = int(now.Month())
	year = now.Year()

	if m := r.URL.Query().Get("month"); m != "" {
		if parsed, err := strconv.Atoi(m); err == nil {
			month = parsed
		}
	}
	if y := r.URL.Query().Get("year"); y != "" {
		if parsed, err := strconv.Atoi(y); err == nil {
			year = parsed
		}
	}
	return month, year
}

// ListSummaries implements TimekeepingHandler.
func (h *timekeepingHandlerImpl) ListSummaries(w http.ResponseWriter, r *http.Request) {
	month, year := parsePeriod(r)

	result, err := h.timekeepingService.ListMonthSummaries(r.Context(), attendance.MonthSummariesRequest{
		Month: month,
		Year:  year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeSummary implements TimekeepingHandler.
func (h *timekeepingHandlerImpl) GetEmployeeSummary(w http.ResponseWriter, r *http.Request) {
	month, year := parsePeriod(r)

	result, err := h.timekeepingService.GetMonthSummary(r.Context(), attendance.MonthSummaryRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Month:      month,
		Year:       year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeProgress implements TimekeepingHandler.
func (h *timekeepingHandlerImpl) GetEmployeeProgress(w http.ResponseWriter, r *http.Request) {
	month, year := parsePeriod(r)

	result, err := h.timekeepingService.GetMonthProgress(r.Context(), attendance.MonthProgressRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Month:      month,
		Year:       year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetGrid implements TimekeepingHandler.
func (h *timekeepingHandlerImpl) GetGrid(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := attendance.AttendanceGridRequest{
		Mode: query.Get("mode"),
		Date: query.Get("date"),
	}
	if s := query.Get("start_date"); s != "" {
		req.StartDate = &s
	}
	if e := query.Get("end_date"); e != "" {
		req.EndDate = &e
	}
	if b := query.Get("branch_id"); b != "" {
		req.BranchID = &b
	}

	result, err := h.timekeepingService.GetAttendanceGrid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
