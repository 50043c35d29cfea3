package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

func TestFindConflicts_ReportsOverlaps(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	repo := &fakeRepo{
		listOverlappingFn: func(ctx context.Context, serviceID uint, start, end time.Time, excludeID *uint) ([]models.Appointment, error) {
			return []models.Appointment{
				{
					ID:        1,
					StartTime: day.Add(10 * time.Hour),
					EndTime:   day.Add(11 * time.Hour),
					Client:    models.Client{Name: "Ana"},
				},
				{
					ID:          2,
					StartTime:   day.Add(10 * time.Hour),
					EndTime:     day.Add(11 * time.Hour),
					IsCancelled: true,
				},
			}, nil
		},
	}

	uc := NewFindConflicts(repo)

	conflicts, err := uc.Execute(context.Background(), FindConflictsInput{
		SalonID:   1,
		ServiceID: 1,
		Date:      "2026-09-02",
		Start:     "10:30",
		End:       "11:30",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	// the cancelled row came back from the store but is filtered here
	if len(conflicts) != 1 || conflicts[0].AppointmentID != 1 {
		t.Fatalf("conflicts = %+v, want only appointment 1", conflicts)
	}
}

func TestFindConflicts_PassesExcludeIDToStore(t *testing.T) {
	exclude := uint(9)
	var gotExclude *uint

	repo := &fakeRepo{
		listOverlappingFn: func(ctx context.Context, serviceID uint, start, end time.Time, excludeID *uint) ([]models.Appointment, error) {
			gotExclude = excludeID
			return nil, nil
		},
	}

	uc := NewFindConflicts(repo)

	_, err := uc.Execute(context.Background(), FindConflictsInput{
		SalonID:              1,
		ServiceID:            1,
		Date:                 "2026-09-02",
		Start:                "10:00",
		End:                  "10:30",
		ExcludeAppointmentID: &exclude,
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if gotExclude == nil || *gotExclude != 9 {
		t.Fatalf("excludeID = %v, want 9", gotExclude)
	}
}

func TestFindConflicts_MalformedInputSkipsStore(t *testing.T) {
	repo := &fakeRepo{
		getSalonFn: func(ctx context.Context, id uint) (*models.Salon, error) {
			t.Fatalf("malformed input must be refused before any lookup")
			return nil, nil
		},
	}

	uc := NewFindConflicts(repo)

	_, err := uc.Execute(context.Background(), FindConflictsInput{
		SalonID: 1, ServiceID: 1,
		Date: "02/09/2026", Start: "10:00", End: "11:00",
	})
	if !httperr.IsBusiness(err, "invalid_date_format") {
		t.Fatalf("err = %v, want invalid_date_format", err)
	}

	_, err = uc.Execute(context.Background(), FindConflictsInput{
		SalonID: 1, ServiceID: 1,
		Date: "2026-09-02", Start: "11:00", End: "10:00",
	})
	if !httperr.IsBusiness(err, "invalid_time_range") {
		t.Fatalf("err = %v, want invalid_time_range", err)
	}
}

func TestListAppointmentsByDate_DerivesStatus(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	repo := &fakeRepo{
		listForPeriodFn: func(ctx context.Context, staffID uint, start, end time.Time) ([]models.Appointment, error) {
			return []models.Appointment{
				{
					ID:        1,
					PublicRef: "ref-1",
					StartTime: day.Add(10 * time.Hour),
					EndTime:   day.Add(11 * time.Hour),
					Client:    models.Client{Name: "Ana"},
					Service:   models.Service{Name: "Haircut"},
				},
				{
					ID:          2,
					StartTime:   day.Add(11 * time.Hour),
					EndTime:     day.Add(12 * time.Hour),
					IsCancelled: true,
				},
			}, nil
		},
	}

	uc := NewListAppointmentsByDate(repo)

	list, err := uc.Execute(context.Background(), 5, 1, day)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("list = %d entries, want 2", len(list))
	}
	if list[0].Status != "scheduled" || list[0].ClientName != "Ana" || list[0].ServiceName != "Haircut" {
		t.Fatalf("first entry = %+v", list[0])
	}
	if list[1].Status != "cancelled" {
		t.Fatalf("second entry status = %q, want cancelled", list[1].Status)
	}
}
