package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

// A fixed far-future Friday keeps the slot math independent of the wall
// clock: every candidate slot is "in the future" whenever the suite runs.
func futureDay() time.Time {
	return time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
}

func slotsInput(day time.Time) domain.SlotsInput {
	return domain.SlotsInput{
		SalonID:   1,
		StaffID:   5,
		ServiceID: 1,
		Date:      day,
	}
}

func TestGenerateSlots_EmptyDay(t *testing.T) {
	repo := &fakeRepo{
		getServiceFn: func(ctx context.Context, salonID, serviceID uint) (*models.Service, error) {
			return utcService(30), nil
		},
		listForDayFn: func(ctx context.Context, staffID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
			return nil, nil
		},
	}

	slots, err := NewGenerateSlots(repo, nil).Execute(context.Background(), slotsInput(futureDay()))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("slots = %d, want 16", len(slots))
	}
	if slots[0].StartTime.Hour() != 9 {
		t.Fatalf("first slot = %v, want 09:00", slots[0].StartTime)
	}
}

func TestGenerateSlots_SingleStoreFetchPerDay(t *testing.T) {
	day := futureDay()
	calls := 0

	repo := &fakeRepo{
		getServiceFn: func(ctx context.Context, salonID, serviceID uint) (*models.Service, error) {
			return utcService(30), nil
		},
		listForDayFn: func(ctx context.Context, staffID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
			calls++
			if staffID != 5 {
				t.Fatalf("staffID = %d, want 5", staffID)
			}
			if dayEnd.Sub(dayStart) != 24*time.Hour {
				t.Fatalf("window = [%v, %v), want a 24h day", dayStart, dayEnd)
			}
			return nil, nil
		},
	}

	if _, err := NewGenerateSlots(repo, nil).Execute(context.Background(), slotsInput(day)); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("store fetches = %d, want exactly 1 per day", calls)
	}
}

func TestGenerateSlots_BookedAppointmentRemovesItsSlot(t *testing.T) {
	day := futureDay()

	repo := &fakeRepo{
		getServiceFn: func(ctx context.Context, salonID, serviceID uint) (*models.Service, error) {
			return utcService(30), nil
		},
		listForDayFn: func(ctx context.Context, staffID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
			return []models.Appointment{
				{
					ID:        1,
					StartTime: day.Add(10 * time.Hour),
					EndTime:   day.Add(10*time.Hour + 30*time.Minute),
				},
			}, nil
		},
	}

	slots, err := NewGenerateSlots(repo, nil).Execute(context.Background(), slotsInput(day))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(slots) != 15 {
		t.Fatalf("slots = %d, want 15 after one booking", len(slots))
	}
	for _, s := range slots {
		if s.StartTime.Equal(day.Add(10 * time.Hour)) {
			t.Fatalf("10:00 should not be offered")
		}
	}
}

func TestGenerateSlots_UnknownService(t *testing.T) {
	repo := &fakeRepo{
		getServiceFn: func(ctx context.Context, salonID, serviceID uint) (*models.Service, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	_, err := NewGenerateSlots(repo, nil).Execute(context.Background(), slotsInput(futureDay()))
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("err = %v, want service_not_found", err)
	}
}

func TestGenerateSlots_StoreOutagePropagates(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &fakeRepo{
		getServiceFn: func(ctx context.Context, salonID, serviceID uint) (*models.Service, error) {
			return nil, boom
		},
	}

	_, err := NewGenerateSlots(repo, nil).Execute(context.Background(), slotsInput(futureDay()))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the store error unchanged", err)
	}
	if httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("store outage must not be reported as a missing service")
	}
}
