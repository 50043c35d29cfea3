package handlers

import (
	"time"

	"github.com/NovaLinkServices/salon-scheduler/internal/models"
	"github.com/NovaLinkServices/salon-scheduler/internal/timezone"
)

// Every date the API receives is interpreted in the salon's configured
// timezone, never the server's.

func locationFromSalon(salon *models.Salon) *time.Location {
	if salon != nil {
		return timezone.Location(salon.Timezone)
	}
	return timezone.Location("")
}

func parseDateInSalon(salon *models.Salon, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromSalon(salon),
	)
}
