package schedule

import (
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/calendar"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/pkg/validator"
)

// ========================================
// SCHEDULE GRID
// ========================================

type ScheduleGridRequest struct {
	Mode      string  `json:"mode"`
	Date      string  `json:"date"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	BranchID  *string `json:"branch_id"`
}

func (r *ScheduleGridRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.StartDate != nil && *r.StartDate != "" {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleGridResponse struct {
	Days []ScheduleGridDay `json:"days"`
}

type ScheduleGridDay struct {
	calendar.DayResponse
	Cells []ScheduleGridCell `json:"cells"`
}

// ScheduleGridCell aggregates one branch+shift bucket within a single day.
type ScheduleGridCell struct {
	Key             string  `json:"key"`
	BranchID        string  `json:"branch_id"`
	BranchName      string  `json:"branch_name,omitempty"`
	ShiftID         *string `json:"shift_id,omitempty"`
	ShiftName       *string `json:"shift_name,omitempty"`
	Count           int     `json:"count"`
	UniqueEmployees int     `json:"unique_employees"`
}
