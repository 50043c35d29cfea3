package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/middleware"
	"github.com/NovaLinkServices/salon-scheduler/internal/payments"
	"github.com/NovaLinkServices/salon-scheduler/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC      *scheduling.CreateAppointment
	rescheduleUC  *scheduling.RescheduleAppointment
	cancelUC      *scheduling.CancelAppointment
	deleteUC      *scheduling.DeleteAppointment
	listByDateUC  *scheduling.ListAppointmentsByDate
	listByMonthUC *scheduling.ListAppointmentsByMonth

	repo     domain.Repository
	payments *payments.Client // nil when deposits are not configured
}

func NewAppointmentHandler(
	createUC *scheduling.CreateAppointment,
	rescheduleUC *scheduling.RescheduleAppointment,
	cancelUC *scheduling.CancelAppointment,
	deleteUC *scheduling.DeleteAppointment,
	listByDateUC *scheduling.ListAppointmentsByDate,
	listByMonthUC *scheduling.ListAppointmentsByMonth,
	repo domain.Repository,
	paymentsClient *payments.Client,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:      createUC,
		rescheduleUC:  rescheduleUC,
		cancelUC:      cancelUC,
		deleteUC:      deleteUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		repo:          repo,
		payments:      paymentsClient,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		scheduling.CreateAppointmentInput{
			SalonID:     salonID,
			StaffID:     staffID,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.rescheduleUC.Execute(
		c.Request.Context(),
		scheduling.RescheduleAppointmentInput{
			SalonID:       salonID,
			StaffID:       staffID,
			AppointmentID: id,
			Date:          req.Date,
			Time:          req.Time,
		},
	)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CANCEL / DELETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), salonID, staffID, id)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), salonID, staffID, id); err != nil {
		mapSchedulingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

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

	list, err := h.listByDateUC.Execute(c.Request.Context(), staffID, salonID, date)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Query parameters 'year' and 'month' are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	list, err := h.listByMonthUC.Execute(c.Request.Context(), staffID, salonID, year, month)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": list,
	})
}

// ======================================================
// DEPOSIT PAYMENT LINK
// ======================================================

func (h *AppointmentHandler) PaymentLink(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	if h.payments == nil {
		httperr.BadRequest(c, "payments_disabled", "Payments are not configured.")
		return
	}

	salon, err := h.repo.GetSalonByID(c.Request.Context(), salonID)
	if err != nil {
		httperr.Internal(c, "salon_not_found", "Salon not found.")
		return
	}

	if !salon.RequireDeposit {
		httperr.BadRequest(c, "deposit_not_required", "This salon does not require deposits.")
		return
	}

	ap, err := h.repo.GetAppointmentForStaff(c.Request.Context(), id, staffID)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if !ap.Booked() {
		httperr.BadRequest(c, "invalid_state", "Appointment state does not allow this operation.")
		return
	}

	svc, err := h.repo.GetService(c.Request.Context(), salonID, ap.ServiceID)
	if err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	link, err := h.payments.DepositLink(c.Request.Context(), salon, ap, svc)
	if err != nil {
		httperr.Internal(c, "payment_link_failed", "Failed to create the payment link.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment_id": ap.ID,
		"public_ref":     ap.PublicRef,
		"payment_link":   link,
	})
}
