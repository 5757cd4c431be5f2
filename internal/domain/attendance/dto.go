package attendance

import (
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/calendar"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/pkg/validator"
)

// ========================================
// MONTHLY SUMMARY
// ========================================

type MonthSummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *MonthSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is outside the supported reporting range",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthSummariesRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthSummariesRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is outside the supported reporting range",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthSummaryResponse struct {
	EmployeeID            string  `json:"employee_id"`
	EmployeeName          string  `json:"employee_name,omitempty"`
	PeriodMonth           int     `json:"period_month"`
	PeriodYear            int     `json:"period_year"`
	WorkDays              int     `json:"work_days"`
	TotalHours            float64 `json:"total_hours"`
	OnTimeCount           int     `json:"on_time_count"`
	LateCount             int     `json:"late_count"`
	OvertimeHours         float64 `json:"overtime_hours"`
	AttendanceRatePercent int     `json:"attendance_rate_percent"`
}

type MonthSummariesResponse struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Summaries []MonthSummaryResponse `json:"summaries"`
}

// ========================================
// MONTH PROGRESS (current month target view)
// ========================================

type MonthProgressRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *MonthProgressRequest) Validate() error {
	req := MonthSummaryRequest{EmployeeID: r.EmployeeID, Month: r.Month, Year: r.Year}
	return req.Validate()
}

type MonthProgressResponse struct {
	EmployeeID      string  `json:"employee_id"`
	Period          string  `json:"period"` // "YYYY-MM"
	TotalHours      float64 `json:"total_hours"`
	MinMonthlyHours float64 `json:"min_monthly_hours"`
	PercentComplete int     `json:"percent_complete"`
}

// ========================================
// ATTENDANCE GRID
// ========================================

type AttendanceGridRequest struct {
	Mode      string  `json:"mode"`
	Date      string  `json:"date"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	BranchID  *string `json:"branch_id"`
}

func (r *AttendanceGridRequest) Validate() error {
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

type AttendanceGridResponse struct {
	Days []AttendanceGridDay `json:"days"`
}

type AttendanceGridDay struct {
	calendar.DayResponse
	Cells []AttendanceGridCell `json:"cells"`
}

// AttendanceGridCell aggregates one branch's attendance within a single day.
// A nil branch on the records lands in the "unassigned" cell.
type AttendanceGridCell struct {
	BranchID        string `json:"branch_id"`
	Count           int    `json:"count"`
	UniqueEmployees int    `json:"unique_employees"`
}
