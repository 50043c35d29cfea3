package scheduling

import (
	"time"

	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

// ===============================
// Slot Planning
// ===============================

const (
	DefaultSlotStepMinutes = 30
	DefaultWindowStartHour = 9
	DefaultWindowEndHour   = 17
)

// WorkingWindow is the single authoritative source of the slot generator's
// daily hours. Callers that do not supply one get the 09:00-17:00 default.
type WorkingWindow struct {
	StartHour int
	EndHour   int
}

func DefaultWindow() WorkingWindow {
	return WorkingWindow{
		StartHour: DefaultWindowStartHour,
		EndHour:   DefaultWindowEndHour,
	}
}

func (w WorkingWindow) Zero() bool {
	return w.StartHour == 0 && w.EndHour == 0
}

type TimeSlot struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DurationMin int       `json:"duration_min"`
}

type SlotsInput struct {
	SalonID   uint
	StaffID   uint
	ServiceID uint
	Date      time.Time
	Window    WorkingWindow
}

// PlanSlots enumerates the bookable slots of one calendar day in ascending
// order. Candidate starts step through the window at the given granularity;
// a candidate is dropped when it starts before now, when its end crosses the
// window boundary, or when it overlaps a booked appointment. The booked list
// is evaluated in memory: one store fetch per day, never one per slot.
func PlanSlots(
	day time.Time,
	window WorkingWindow,
	durationMin int,
	step time.Duration,
	booked []models.Appointment,
	now time.Time,
) []TimeSlot {

	if durationMin <= 0 || step <= 0 {
		return nil
	}
	if window.Zero() {
		window = DefaultWindow()
	}

	loc := day.Location()
	windowStart := time.Date(day.Year(), day.Month(), day.Day(), window.StartHour, 0, 0, 0, loc)
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), window.EndHour, 0, 0, 0, loc)

	duration := time.Duration(durationMin) * time.Minute

	var slots []TimeSlot
	for cur := windowStart; cur.Before(windowEnd); cur = cur.Add(step) {
		if cur.Before(now) {
			continue
		}

		slotEnd := cur.Add(duration)
		if slotEnd.After(windowEnd) {
			continue
		}

		if len(FilterConflicts(booked, cur, slotEnd, nil)) > 0 {
			continue
		}

		slots = append(slots, TimeSlot{
			StartTime:   cur,
			EndTime:     slotEnd,
			DurationMin: durationMin,
		})
	}

	return slots
}
