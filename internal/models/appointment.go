package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PublicRef string `gorm:"size:36;uniqueIndex" json:"public_ref"`

	SalonID uint  `json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	StaffID uint `json:"staff_id"`
	Staff   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Cancelled appointments are kept for history, deleted ones are soft
	// deleted. Both are excluded from conflict and availability queries.
	IsCancelled bool       `gorm:"default:false" json:"is_cancelled"`
	CancelledAt *time.Time `json:"cancelled_at"`
	IsDeleted   bool       `gorm:"default:false" json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Booked reports whether the appointment still occupies its time range.
func (a *Appointment) Booked() bool {
	return !a.IsCancelled && !a.IsDeleted
}
