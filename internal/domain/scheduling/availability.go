package scheduling

import (
	"fmt"
	"time"

	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

// ===============================
// Availability Decision
// ===============================

type AvailabilityResult struct {
	Available bool       `json:"available"`
	Reason    string     `json:"reason,omitempty"`
	Conflicts []Conflict `json:"conflicts,omitempty"`
}

// Reasons are user-visible exactly as written.
const (
	ReasonServiceDisabled = "Service is not available for booking"
	ReasonConflict        = "Time slot conflicts with existing appointment"
)

func ReasonUnavailableDay(day time.Weekday) string {
	return fmt.Sprintf("Service is not available on %s", day)
}

func ReasonOutsideHours(startHour, endHour int) string {
	return fmt.Sprintf("Service is only available between %d:00 and %d:00", startHour, endHour)
}

// CheckPolicy runs the service-policy checks that need no store access:
// the global availability switch, the weekday set and the hour window.
// These run before any conflict query so the common rejections stay cheap.
func CheckPolicy(svc *models.Service, start, end time.Time) (bool, string) {
	if !svc.IsAvailable {
		return false, ReasonServiceDisabled
	}

	if !svc.BookableOn(int(start.Weekday())) {
		return false, ReasonUnavailableDay(start.Weekday())
	}

	// Wall-clock hour comparison, matching the booking window [start, end):
	// an appointment ending exactly on the closing hour is allowed.
	if start.Hour() < svc.AvailableTimeStart || end.Hour() > svc.AvailableTimeEnd {
		return false, ReasonOutsideHours(svc.AvailableTimeStart, svc.AvailableTimeEnd)
	}

	return true, ""
}
