package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/usecase/scheduling"
)

// mapSchedulingError translates use case failures into HTTP responses.
// Availability refusals ship the full result so clients can show the reason
// and, for double bookings, the colliding appointments.
func mapSchedulingError(c *gin.Context, err error) {
	var un *scheduling.UnavailableError
	if errors.As(err, &un) {
		status := http.StatusBadRequest
		if un.Result.Reason == domain.ReasonConflict {
			status = http.StatusConflict
		}
		c.JSON(status, un.Result)
		return
	}

	switch {
	case httperr.IsBusiness(err, "invalid_date_format"):
		httperr.BadRequest(c, "invalid_date_format", "Invalid date or time format.")
	case httperr.IsBusiness(err, "invalid_time_range"):
		httperr.BadRequest(c, "invalid_time_range", "End time must be after start time.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Appointments require more advance notice.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", domain.ReasonConflict)
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Service not found.")
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Appointment state does not allow this operation.")
	default:
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
