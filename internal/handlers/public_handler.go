package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/models"
	"github.com/NovaLinkServices/salon-scheduler/internal/usecase/scheduling"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the client-facing booking surface. Everything is
// keyed by the salon slug; no authentication.
type PublicHandler struct {
	db       *gorm.DB
	createUC *scheduling.CreateAppointment
	checkUC  *scheduling.CheckAvailability
	slotsUC  *scheduling.GenerateSlots
}

func NewPublicHandler(
	db *gorm.DB,
	createUC *scheduling.CreateAppointment,
	checkUC *scheduling.CheckAvailability,
	slotsUC *scheduling.GenerateSlots,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		createUC: createUC,
		checkUC:  checkUC,
		slotsUC:  slotsUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// HELPERS
////////////////////////////////////////////////////////

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return nil, false
	}
	return &salon, true
}

// defaultStaff picks the salon owner as the bookable staff member for the
// public page.
func (h *PublicHandler) defaultStaff(c *gin.Context, salonID uint) (*models.User, bool) {
	var staff models.User
	if err := h.db.
		Where("salon_id = ? AND role = ?", salonID, "owner").
		First(&staff).Error; err != nil {

		httperr.BadRequest(c, "staff_not_found", "No bookable staff member.")
		return nil, false
	}
	return &staff, true
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("salon_id = ? AND is_available = true", salon.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Slots(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Query parameters 'date' and 'service_id' are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	staff, ok := h.defaultStaff(c, salon.ID)
	if !ok {
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
			SalonID:   salon.ID,
			StaffID:   staff.ID,
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

func (h *PublicHandler) CheckAvailability(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	dateStr := c.Query("date")
	startStr := c.Query("start")
	endStr := c.Query("end")
	if dateStr == "" || startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_params", "Query parameters 'date', 'start' and 'end' are required.")
		return
	}

	result, err := h.checkUC.Execute(
		c.Request.Context(),
		scheduling.CheckAvailabilityInput{
			SalonID:   salon.ID,
			ServiceID: uint(serviceID),
			Date:      dateStr,
			Start:     startStr,
			End:       endStr,
		},
	)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	staff, ok := h.defaultStaff(c, salon.ID)
	if !ok {
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		scheduling.CreateAppointmentInput{
			SalonID:     salon.ID,
			StaffID:     staff.ID,
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

	c.JSON(http.StatusCreated, gin.H{
		"public_ref": ap.PublicRef,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
	})
}
