package cache

import (
	"strings"
	"testing"
	"time"
)

// Conflicts are per staff member, not per service: booking any service stales
// the cached slot lists of every service that staff member offers. The key
// layout has to let Invalidate drop them all with one staff+day pattern.
func TestSlotKeysGroupByStaffDay(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	prefix := staffDayPrefix(5, day)

	for _, serviceID := range []uint{1, 2, 99} {
		key := slotsKey(serviceID, 5, day)
		if !strings.HasPrefix(key, prefix) {
			t.Fatalf("key %q must share the staff day prefix %q", key, prefix)
		}
	}

	if slotsKey(1, 5, day) == slotsKey(2, 5, day) {
		t.Fatalf("different services must not share a cache entry")
	}
}

func TestSlotKeyPrefixIsolatesStaffAndDay(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	nextDay := day.Add(24 * time.Hour)

	if strings.HasPrefix(slotsKey(1, 6, day), staffDayPrefix(5, day)) {
		t.Fatalf("another staff member's keys must not match the pattern")
	}
	if strings.HasPrefix(slotsKey(1, 5, nextDay), staffDayPrefix(5, day)) {
		t.Fatalf("another day's keys must not match the pattern")
	}
}
