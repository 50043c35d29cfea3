package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/media"
	"github.com/NovaLinkServices/salon-scheduler/internal/middleware"
	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

const maxUploadBytes = 8 << 20

type ServiceHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewServiceHandler(db *gorm.DB, uploader *media.Uploader) *ServiceHandler {
	return &ServiceHandler{db: db, uploader: uploader}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`

	AvailableDays      []int `json:"available_days"`
	AvailableTimeStart *int  `json:"available_time_start"`
	AvailableTimeEnd   *int  `json:"available_time_end"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`

	IsAvailable        *bool  `json:"is_available,omitempty"`
	AvailableDays      *[]int `json:"available_days,omitempty"`
	AvailableTimeStart *int   `json:"available_time_start,omitempty"`
	AvailableTimeEnd   *int   `json:"available_time_end,omitempty"`
}

func validDays(days []int) bool {
	for _, d := range days {
		if d < 0 || d > 6 {
			return false
		}
	}
	return true
}

func validHourWindow(start, end int) bool {
	return start >= 0 && end <= 24 && start < end
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	availableStr := strings.TrimSpace(c.Query("available"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("salon_id = ?", salonID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if availableStr == "true" {
		q = q.Where("is_available = ?", true)
	} else if availableStr == "false" {
		q = q.Where("is_available = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	days := req.AvailableDays
	if len(days) == 0 {
		// bookable every day unless the salon narrows it down
		days = []int{0, 1, 2, 3, 4, 5, 6}
	}
	if !validDays(days) {
		httperr.BadRequest(c, "invalid_available_days", "Weekdays must be between 0 (Sunday) and 6 (Saturday).")
		return
	}

	startHour, endHour := 9, 17
	if req.AvailableTimeStart != nil {
		startHour = *req.AvailableTimeStart
	}
	if req.AvailableTimeEnd != nil {
		endHour = *req.AvailableTimeEnd
	}
	if !validHourWindow(startHour, endHour) {
		httperr.BadRequest(c, "invalid_time_window", "Hour window must satisfy 0 <= start < end <= 24.")
		return
	}

	svc := models.Service{
		SalonID:     salonID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Category:    strings.ToLower(req.Category),

		IsAvailable:        true,
		AvailableDays:      days,
		AvailableTimeStart: startHour,
		AvailableTimeEnd:   endHour,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var svc models.Service
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&svc).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Failed to load service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.DurationMin != nil {
		if *req.DurationMin < 1 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be at least one minute.")
			return
		}
		svc.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Category != nil {
		svc.Category = strings.ToLower(*req.Category)
	}
	if req.IsAvailable != nil {
		svc.IsAvailable = *req.IsAvailable
	}

	if req.AvailableDays != nil {
		if !validDays(*req.AvailableDays) {
			httperr.BadRequest(c, "invalid_available_days", "Weekdays must be between 0 (Sunday) and 6 (Saturday).")
			return
		}
		svc.AvailableDays = *req.AvailableDays
	}

	startHour := svc.AvailableTimeStart
	endHour := svc.AvailableTimeEnd
	if req.AvailableTimeStart != nil {
		startHour = *req.AvailableTimeStart
	}
	if req.AvailableTimeEnd != nil {
		endHour = *req.AvailableTimeEnd
	}
	if !validHourWindow(startHour, endHour) {
		httperr.BadRequest(c, "invalid_time_window", "Hour window must satisfy 0 <= start < end <= 24.")
		return
	}
	svc.AvailableTimeStart = startHour
	svc.AvailableTimeEnd = endHour

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&models.Service{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Failed to delete service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage converts the uploaded picture to webp, stores it in the object
// store and links it to the service.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	if h.uploader == nil || !h.uploader.Enabled() {
		httperr.BadRequest(c, "uploads_disabled", "Image uploads are not configured.")
		return
	}

	var svc models.Service
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Multipart field 'image' is required.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Failed to read upload.")
		return
	}
	if len(raw) > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the upload size limit.")
		return
	}

	processed, err := media.ProcessImage(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not decode the uploaded image.")
		return
	}

	key := fmt.Sprintf("salons/%d/services/%d/%s.webp", salonID, svc.ID, uuid.NewString())

	url, err := h.uploader.UploadWebp(c.Request.Context(), key, processed)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store the image.")
		return
	}

	svc.ImageURL = url
	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to save the image URL.")
		return
	}

	c.JSON(http.StatusOK, svc)
}
