package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

func existingAppointment() *models.Appointment {
	day := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Appointment{
		ID:        7,
		SalonID:   1,
		StaffID:   5,
		ServiceID: 1,
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(10*time.Hour + 30*time.Minute),
	}
}

func TestRescheduleAppointment_Success(t *testing.T) {
	var gotStart, gotEnd time.Time

	repo := &fakeRepo{
		getForStaffFn: func(ctx context.Context, appointmentID, staffID uint) (*models.Appointment, error) {
			return existingAppointment(), nil
		},
		getServiceFn: func(ctx context.Context, salonID, serviceID uint) (*models.Service, error) {
			return utcService(30), nil
		},
		rescheduleFn: func(ctx context.Context, ap *models.Appointment, newStart, newEnd time.Time) error {
			gotStart, gotEnd = newStart, newEnd
			ap.StartTime = newStart
			ap.EndTime = newEnd
			return nil
		},
	}

	uc := NewRescheduleAppointment(repo, nil, nil, nil)

	ap, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		SalonID:       1,
		StaffID:       5,
		AppointmentID: 7,
		Date:          "2100-01-02",
		Time:          "14:00",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	want := time.Date(2100, 1, 2, 14, 0, 0, 0, time.UTC)
	if !gotStart.Equal(want) {
		t.Fatalf("new start = %v, want %v", gotStart, want)
	}
	if gotEnd.Sub(gotStart) != 30*time.Minute {
		t.Fatalf("new duration = %v, want 30m", gotEnd.Sub(gotStart))
	}
	if !ap.StartTime.Equal(want) {
		t.Fatalf("appointment start = %v, want %v", ap.StartTime, want)
	}
}

func TestRescheduleAppointment_ConflictExcludesSelf(t *testing.T) {
	repo := &fakeRepo{
		getForStaffFn: func(ctx context.Context, appointmentID, staffID uint) (*models.Appointment, error) {
			return existingAppointment(), nil
		},
		getServiceFn: func(ctx context.Context, salonID, serviceID uint) (*models.Service, error) {
			return utcService(30), nil
		},
		rescheduleFn: func(ctx context.Context, ap *models.Appointment, newStart, newEnd time.Time) error {
			return httperr.ErrBusiness("time_conflict")
		},
		listOverlappingFn: func(ctx context.Context, serviceID uint, start, end time.Time, excludeID *uint) ([]models.Appointment, error) {
			if excludeID == nil || *excludeID != 7 {
				t.Fatalf("excludeID = %v, want the rescheduled appointment's id", excludeID)
			}
			return nil, nil
		},
	}

	uc := NewRescheduleAppointment(repo, nil, nil, nil)

	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		SalonID:       1,
		StaffID:       5,
		AppointmentID: 7,
		Date:          "2100-01-02",
		Time:          "14:00",
	})

	var un *UnavailableError
	if !errors.As(err, &un) {
		t.Fatalf("err = %T, want *UnavailableError", err)
	}
	if un.Result.Reason != "Time slot conflicts with existing appointment" {
		t.Fatalf("reason = %q", un.Result.Reason)
	}
}

func TestRescheduleAppointment_CancelledCannotMove(t *testing.T) {
	cancelled := existingAppointment()
	cancelled.IsCancelled = true

	repo := &fakeRepo{
		getForStaffFn: func(ctx context.Context, appointmentID, staffID uint) (*models.Appointment, error) {
			return cancelled, nil
		},
	}

	uc := NewRescheduleAppointment(repo, nil, nil, nil)

	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		SalonID:       1,
		StaffID:       5,
		AppointmentID: 7,
		Date:          "2100-01-02",
		Time:          "14:00",
	})
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("err = %v, want invalid_state", err)
	}
}

func TestCancelAppointment_StampsAndPersists(t *testing.T) {
	var saved *models.Appointment

	repo := &fakeRepo{
		getForStaffFn: func(ctx context.Context, appointmentID, staffID uint) (*models.Appointment, error) {
			return existingAppointment(), nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) error {
			saved = ap
			return nil
		},
	}

	uc := NewCancelAppointment(repo, nil, nil, nil)

	ap, err := uc.Execute(context.Background(), 1, 5, 7)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !ap.IsCancelled || ap.CancelledAt == nil {
		t.Fatalf("appointment not cancelled: %+v", ap)
	}
	if saved != ap {
		t.Fatalf("cancelled appointment was not persisted")
	}
}

func TestCancelAppointment_MissingRowMapsToNotFound(t *testing.T) {
	repo := &fakeRepo{
		getForStaffFn: func(ctx context.Context, appointmentID, staffID uint) (*models.Appointment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	uc := NewCancelAppointment(repo, nil, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 5, 7)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("err = %v, want appointment_not_found", err)
	}
}

func TestCancelAppointment_StoreOutagePropagates(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &fakeRepo{
		getForStaffFn: func(ctx context.Context, appointmentID, staffID uint) (*models.Appointment, error) {
			return nil, boom
		},
	}

	uc := NewCancelAppointment(repo, nil, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 5, 7)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the store error unchanged", err)
	}
	if httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("store outage must not be reported as a missing appointment")
	}
}

func TestDeleteAppointment_SoftDeletes(t *testing.T) {
	var saved *models.Appointment

	repo := &fakeRepo{
		getForStaffFn: func(ctx context.Context, appointmentID, staffID uint) (*models.Appointment, error) {
			return existingAppointment(), nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) error {
			saved = ap
			return nil
		},
	}

	uc := NewDeleteAppointment(repo, nil, nil, nil)

	if err := uc.Execute(context.Background(), 1, 5, 7); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if saved == nil || !saved.IsDeleted || saved.DeletedAt == nil {
		t.Fatalf("appointment not soft deleted: %+v", saved)
	}
}
