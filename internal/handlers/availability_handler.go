package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/middleware"
	"github.com/NovaLinkServices/salon-scheduler/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	checkUC     *scheduling.CheckAvailability
	conflictsUC *scheduling.FindConflicts
	slotsUC     *scheduling.GenerateSlots

	repo domain.Repository
}

func NewAvailabilityHandler(
	checkUC *scheduling.CheckAvailability,
	conflictsUC *scheduling.FindConflicts,
	slotsUC *scheduling.GenerateSlots,
	repo domain.Repository,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		checkUC:     checkUC,
		conflictsUC: conflictsUC,
		slotsUC:     slotsUC,
		repo:        repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckAvailabilityRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`  // YYYY-MM-DD
	Start     string `json:"start" binding:"required"` // HH:mm
	End       string `json:"end" binding:"required"`   // HH:mm
}

// ======================================================
// CHECK
// ======================================================

// Check answers "can this exact range be booked?" with the reason when it
// cannot. It never writes anything.
func (h *AvailabilityHandler) Check(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	result, err := h.checkUC.Execute(
		c.Request.Context(),
		scheduling.CheckAvailabilityInput{
			SalonID:   salonID,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			Start:     req.Start,
			End:       req.End,
		},
	)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ======================================================
// CONFLICTS
// ======================================================

func (h *AvailabilityHandler) Conflicts(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Query parameter 'service_id' is required.")
		return
	}

	dateStr := c.Query("date")
	startStr := c.Query("start")
	endStr := c.Query("end")
	if dateStr == "" || startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_params", "Query parameters 'date', 'start' and 'end' are required.")
		return
	}

	var excludeID *uint
	if raw := c.Query("exclude_appointment_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_exclude_id", "Invalid 'exclude_appointment_id'.")
			return
		}
		v := uint(id)
		excludeID = &v
	}

	conflicts, err := h.conflictsUC.Execute(
		c.Request.Context(),
		scheduling.FindConflictsInput{
			SalonID:              salonID,
			ServiceID:            uint(serviceID),
			Date:                 dateStr,
			Start:                startStr,
			End:                  endStr,
			ExcludeAppointmentID: excludeID,
		},
	)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"has_conflict": len(conflicts) > 0,
		"conflicts":    conflicts,
	})
}

// ======================================================
// SLOTS
// ======================================================

func (h *AvailabilityHandler) Slots(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Query parameter 'service_id' is required.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter 'date' is required.")
		return
	}

	salon, err := h.repo.GetSalonByID(c.Request.Context(), salonID)
	if err != nil {
		httperr.Internal(c, "salon_not_found", "Salon not found.")
		return
	}

	date, err := parseDateInSalon(salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date, expected YYYY-MM-DD.")
		return
	}

	slots, err := h.slotsUC.Execute(
		c.Request.Context(),
		domain.SlotsInput{
			SalonID:   salonID,
			StaffID:   staffID,
			ServiceID: uint(serviceID),
			Date:      date,
		},
	)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
