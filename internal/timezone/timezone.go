// Package timezone resolves salon wall-clock time. Every appointment instant
// is parsed and compared in the salon's configured IANA zone; salons that
// never set one fall back to São Paulo time.
package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location never fails: an unknown or empty zone resolves to the default, so
// a bad salon row degrades to wrong-but-consistent times instead of panics.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// NowIn is the clock used by minimum-advance and past-slot checks.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
