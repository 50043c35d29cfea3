package scheduling

import (
	"time"

	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

// ===============================
// Conflict Detection
// ===============================

type Conflict struct {
	AppointmentID uint      `json:"appointment_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	ClientName    string    `json:"client_name"`
}

// FilterConflicts returns the appointments that still occupy their range and
// overlap [start, end). Cancelled and soft-deleted rows never conflict, and
// excludeID removes the appointment being rescheduled so it does not collide
// with itself. Order follows the input (the store returns start_time ASC).
func FilterConflicts(
	appointments []models.Appointment,
	start time.Time,
	end time.Time,
	excludeID *uint,
) []Conflict {

	conflicts := []Conflict{}
	for _, ap := range appointments {
		if !ap.Booked() {
			continue
		}
		if excludeID != nil && ap.ID == *excludeID {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			conflicts = append(conflicts, Conflict{
				AppointmentID: ap.ID,
				StartTime:     ap.StartTime,
				EndTime:       ap.EndTime,
				ClientName:    ap.Client.Name,
			})
		}
	}

	return conflicts
}
