package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint `json:"salon_id"`
	UserID  uint `json:"user_id"`

	Type    string `gorm:"size:50;not null" json:"type"`
	Payload string `gorm:"type:text" json:"payload"`
	Read    bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
