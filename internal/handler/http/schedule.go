package http

import (
	"net/http"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/schedule"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetGrid(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// GetGrid implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetGrid(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := schedule.ScheduleGridRequest{
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

	result, err := h.scheduleService.GetScheduleGrid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
