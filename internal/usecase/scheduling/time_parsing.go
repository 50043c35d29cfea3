package scheduling

import (
	"time"

	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/models"
	"github.com/NovaLinkServices/salon-scheduler/internal/timezone"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// All wall-clock parsing happens in the salon's configured location before
// any store access, so malformed input never reaches a query.

func parseDate(salon *models.Salon, dateStr string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, dateStr, timezone.Location(salon.Timezone))
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_format")
	}
	return d, nil
}

func parseDateTime(salon *models.Salon, dateStr, timeStr string) (time.Time, error) {
	t, err := time.ParseInLocation(
		dateTimeLayout,
		dateStr+" "+timeStr,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_format")
	}
	return t, nil
}

// checkRangeSyntax validates the raw strings without a location, so callers
// can refuse malformed input before looking anything up. The definitive
// instants still come from parseRange in the salon's timezone.
func checkRangeSyntax(dateStr, startStr, endStr string) error {
	start, err := time.Parse(dateTimeLayout, dateStr+" "+startStr)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_format")
	}

	end, err := time.Parse(dateTimeLayout, dateStr+" "+endStr)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_format")
	}

	if !end.After(start) {
		return httperr.ErrBusiness("invalid_time_range")
	}

	return nil
}

func parseRange(salon *models.Salon, dateStr, startStr, endStr string) (time.Time, time.Time, error) {
	start, err := parseDateTime(salon, dateStr, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := parseDateTime(salon, dateStr, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_time_range")
	}

	return start, end, nil
}
