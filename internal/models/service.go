package models

import "time"

// Service is a bookable salon service and carries its own booking policy:
// the weekdays it can be booked on (0=Sunday..6=Saturday) and the daily
// hour window [AvailableTimeStart, AvailableTimeEnd).
type Service struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	IsAvailable        bool  `gorm:"default:true" json:"is_available"`
	AvailableDays      []int `gorm:"serializer:json" json:"available_days"`
	AvailableTimeStart int   `gorm:"default:9" json:"available_time_start"`
	AvailableTimeEnd   int   `gorm:"default:17" json:"available_time_end"`

	Category string `gorm:"size:50" json:"category"`
	ImageURL string `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookableOn reports whether the service may be booked on the given weekday.
func (s *Service) BookableOn(weekday int) bool {
	for _, d := range s.AvailableDays {
		if d == weekday {
			return true
		}
	}
	return false
}
