package scheduling

import (
	"context"
	"time"

	"github.com/NovaLinkServices/salon-scheduler/internal/cache"
	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
	"github.com/NovaLinkServices/salon-scheduler/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type GenerateSlots struct {
	repo  domain.Repository
	slots *cache.SlotCache // optional
}

func NewGenerateSlots(repo domain.Repository, slots *cache.SlotCache) *GenerateSlots {
	return &GenerateSlots{repo: repo, slots: slots}
}

func (uc *GenerateSlots) Execute(
	ctx context.Context,
	in domain.SlotsInput,
) ([]domain.TimeSlot, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, notFound(err, "service_not_found")
	}

	day := in.Date
	now := timezone.NowIn(salon.Timezone)

	if uc.slots != nil {
		if cached, ok := uc.slots.GetSlots(ctx, in.ServiceID, in.StaffID, day); ok {
			return dropPastSlots(cached, now), nil
		}
	}

	window := in.Window
	if window.Zero() {
		window = domain.DefaultWindow()
	}

	loc := day.Location()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	// The whole day is fetched once; every candidate slot is tested in
	// memory against this list.
	booked, err := uc.repo.ListAppointmentsForDay(ctx, in.StaffID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := domain.PlanSlots(
		day,
		window,
		svc.DurationMin,
		domain.DefaultSlotStepMinutes*time.Minute,
		booked,
		now,
	)

	if uc.slots != nil {
		uc.slots.SetSlots(ctx, in.ServiceID, in.StaffID, day, slots)
	}

	return slots, nil
}

// dropPastSlots re-applies the no-past-slots rule to cached entries, which may
// have been generated a few minutes ago.
func dropPastSlots(slots []domain.TimeSlot, now time.Time) []domain.TimeSlot {
	out := slots[:0:0]
	for _, s := range slots {
		if s.StartTime.Before(now) {
			continue
		}
		out = append(out, s)
	}
	return out
}
