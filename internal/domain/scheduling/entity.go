package scheduling

import (
	"time"

	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel marks a booked appointment cancelled. Cancellation is terminal for
// scheduling but the record stays for history.
func Cancel(ap *models.Appointment, now time.Time) error {
	if !ap.Booked() {
		return httperr.ErrBusiness("invalid_state")
	}

	ap.IsCancelled = true
	ap.CancelledAt = &now
	return nil
}

// SoftDelete excludes the appointment from every future query without
// removing the row.
func SoftDelete(ap *models.Appointment, now time.Time) error {
	if ap.IsDeleted {
		return httperr.ErrBusiness("invalid_state")
	}

	ap.IsDeleted = true
	ap.DeletedAt = &now
	return nil
}
