package response

import (
	"errors"
	"net/http"

	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/attendance"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/calendar"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/employee"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/master/branch"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/domain/master/shift"
	"github.com/erpxuongcaphe/onebiz-sub002/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Calendar domain errors
	case errors.Is(err, calendar.ErrInvalidRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, calendar.ErrInvalidViewMode):
		BadRequest(w, err.Error(), nil)

	// Timekeeping domain errors
	case errors.Is(err, attendance.ErrInvalidPolicy):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Directory lookups
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
