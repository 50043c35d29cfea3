package scheduling

import (
	"testing"
	"time"

	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

func testDay() time.Time {
	return time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
}

func pastNow() time.Time {
	// long before the working day starts
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func TestPlanSlots_EmptyDayDefaultWindow(t *testing.T) {
	slots := PlanSlots(testDay(), DefaultWindow(), 30, 30*time.Minute, nil, pastNow())

	// 09:00 .. 16:30, 30 minute steps
	if len(slots) != 16 {
		t.Fatalf("slots = %d, want 16", len(slots))
	}

	first := slots[0]
	if first.StartTime.Hour() != 9 || first.StartTime.Minute() != 0 {
		t.Fatalf("first slot = %v, want 09:00", first.StartTime)
	}
	if first.DurationMin != 30 {
		t.Fatalf("duration = %d, want 30", first.DurationMin)
	}

	last := slots[len(slots)-1]
	if last.StartTime.Hour() != 16 || last.StartTime.Minute() != 30 {
		t.Fatalf("last slot = %v, want 16:30", last.StartTime)
	}
	if last.EndTime.Hour() != 17 || last.EndTime.Minute() != 0 {
		t.Fatalf("last slot end = %v, want 17:00", last.EndTime)
	}
}

func TestPlanSlots_BookedRangeIsExcluded(t *testing.T) {
	booked := []models.Appointment{
		{ID: 1, StartTime: at(10, 0), EndTime: at(10, 30)},
	}

	slots := PlanSlots(testDay(), DefaultWindow(), 30, 30*time.Minute, booked, pastNow())

	if len(slots) != 15 {
		t.Fatalf("slots = %d, want 15 after one booking", len(slots))
	}

	for _, s := range slots {
		if s.StartTime.Equal(at(10, 0)) {
			t.Fatalf("10:00 should be excluded")
		}
	}

	// adjacent slots survive: the booking is half-open
	has930, has1030 := false, false
	for _, s := range slots {
		if s.StartTime.Equal(at(9, 30)) {
			has930 = true
		}
		if s.StartTime.Equal(at(10, 30)) {
			has1030 = true
		}
	}
	if !has930 || !has1030 {
		t.Fatalf("expected 09:30 and 10:30 to remain bookable")
	}
}

func TestPlanSlots_CancelledBookingDoesNotBlock(t *testing.T) {
	booked := []models.Appointment{
		{ID: 1, StartTime: at(10, 0), EndTime: at(10, 30), IsCancelled: true},
	}

	slots := PlanSlots(testDay(), DefaultWindow(), 30, 30*time.Minute, booked, pastNow())
	if len(slots) != 16 {
		t.Fatalf("slots = %d, want 16 when the only booking is cancelled", len(slots))
	}
}

func TestPlanSlots_PastSlotsAreSkipped(t *testing.T) {
	now := at(12, 10)

	slots := PlanSlots(testDay(), DefaultWindow(), 30, 30*time.Minute, nil, now)

	if len(slots) == 0 {
		t.Fatalf("expected afternoon slots")
	}
	if !slots[0].StartTime.Equal(at(12, 30)) {
		t.Fatalf("first slot = %v, want 12:30", slots[0].StartTime)
	}
}

func TestPlanSlots_LongServiceNeverCrossesTheWindow(t *testing.T) {
	slots := PlanSlots(testDay(), DefaultWindow(), 90, 30*time.Minute, nil, pastNow())

	for _, s := range slots {
		if s.EndTime.After(at(17, 0)) {
			t.Fatalf("slot %v ends past the window at %v", s.StartTime, s.EndTime)
		}
	}

	last := slots[len(slots)-1]
	if !last.StartTime.Equal(at(15, 30)) {
		t.Fatalf("last 90min slot = %v, want 15:30", last.StartTime)
	}
}

func TestPlanSlots_CustomWindow(t *testing.T) {
	window := WorkingWindow{StartHour: 8, EndHour: 12}

	slots := PlanSlots(testDay(), window, 30, 30*time.Minute, nil, pastNow())

	if len(slots) != 8 {
		t.Fatalf("slots = %d, want 8 for an 08:00-12:00 window", len(slots))
	}
	if !slots[0].StartTime.Equal(at(8, 0)) {
		t.Fatalf("first slot = %v, want 08:00", slots[0].StartTime)
	}
}

func TestPlanSlots_InvalidInputs(t *testing.T) {
	if got := PlanSlots(testDay(), DefaultWindow(), 0, 30*time.Minute, nil, pastNow()); got != nil {
		t.Fatalf("zero duration should yield no slots")
	}
	if got := PlanSlots(testDay(), DefaultWindow(), 30, 0, nil, pastNow()); got != nil {
		t.Fatalf("zero step should yield no slots")
	}
}
