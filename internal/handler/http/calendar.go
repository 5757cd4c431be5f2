package http

import (
	"net/http"
	"time"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/calendar"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/handler/http/response"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/pkg/validator"
)

type CalendarHandler interface {
	GetDays(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// GetDays implements CalendarHandler.
func (h *calendarHandlerImpl) GetDays(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	mode := query.Get("mode")
	date := query.Get("date")
	if date != "" {
		if _, ok := validator.IsValidDate(date); !ok {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
	}

	var startDate, endDate *string
	if s := query.Get("start_date"); s != "" {
		if _, ok := validator.IsValidDate(s); !ok {
			response.BadRequest(w, "start_date must be in YYYY-MM-DD format", nil)
			return
		}
		startDate = &s
	}
	if e := query.Get("end_date"); e != "" {
		if _, ok := validator.IsValidDate(e); !ok {
			response.BadRequest(w, "end_date must be in YYYY-MM-DD format", nil)
			return
		}
		endDate = &e
	}

	req := calendar.NewGenerateDaysRequest(mode, date, startDate, endDate, time.Now())
	days, err := h.calendarService.GenerateDays(req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]calendar.DayResponse, 0, len(days))
	for _, d := range days {
		result = append(result, calendar.ToDayResponse(d))
	}

	response.Success(w, result)
}
