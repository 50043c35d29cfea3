package notify

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

const (
	TypeAppointmentCreated     = "appointment_created"
	TypeAppointmentCancelled   = "appointment_cancelled"
	TypeAppointmentRescheduled = "appointment_rescheduled"
	TypeAppointmentDeleted     = "appointment_deleted"
)

type Notifier struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

func (n *Notifier) Notify(
	salonID uint,
	userID uint,
	notificationType string,
	payload any,
) error {

	var payloadJSON string
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			payloadJSON = string(b)
		}
	}

	row := models.Notification{
		SalonID: salonID,
		UserID:  userID,
		Type:    notificationType,
		Payload: payloadJSON,
	}

	return n.db.Create(&row).Error
}
