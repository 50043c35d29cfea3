package scheduling

import (
	"context"
	"time"

	"github.com/NovaLinkServices/salon-scheduler/internal/audit"
	"github.com/NovaLinkServices/salon-scheduler/internal/cache"
	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/models"
	"github.com/NovaLinkServices/salon-scheduler/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleAppointmentInput struct {
	SalonID       uint
	StaffID       uint
	AppointmentID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
	audit    *audit.Logger
	slots    *cache.SlotCache
}

func NewRescheduleAppointment(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditLog *audit.Logger,
	slots *cache.SlotCache,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditLog,
		slots:    slots,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForStaff(ctx, in.AppointmentID, in.StaffID)
	if err != nil {
		return nil, notFound(err, "appointment_not_found")
	}

	if !ap.Booked() {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	svc, err := uc.repo.GetService(ctx, in.SalonID, ap.ServiceID)
	if err != nil {
		return nil, notFound(err, "service_not_found")
	}

	newStart, err := parseDateTime(salon, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	newEnd := newStart.Add(time.Duration(svc.DurationMin) * time.Minute)

	if ok, reason := domain.CheckPolicy(svc, newStart, newEnd); !ok {
		return nil, unavailable(reason, nil)
	}

	oldStart := ap.StartTime

	// The appointment's own row is excluded from the conflict check, so
	// keeping the same time (or shifting inside its own range) is allowed.
	if err := uc.repo.RescheduleAppointment(ctx, ap, newStart, newEnd); err != nil {
		if httperr.IsBusiness(err, "time_conflict") || httperr.IsExclusionConflict(err) {
			uc.audit.Log(
				in.SalonID,
				&in.StaffID,
				"appointment_conflict",
				"appointment",
				&ap.ID,
				map[string]any{"start": newStart, "end": newEnd},
			)
			return nil, conflictError(ctx, uc.repo, ap.ServiceID, newStart, newEnd, &ap.ID)
		}
		return nil, err
	}

	if uc.slots != nil {
		uc.slots.Invalidate(ctx, in.StaffID, oldStart)
		uc.slots.Invalidate(ctx, in.StaffID, newStart)
	}

	uc.notifier.Dispatch(notify.Event{
		SalonID: in.SalonID,
		UserID:  in.StaffID,
		Type:    notify.TypeAppointmentRescheduled,
		Payload: map[string]any{
			"appointment_id": ap.ID,
			"old_start":      oldStart,
			"new_start":      newStart,
		},
	})

	uc.audit.Log(
		in.SalonID,
		&in.StaffID,
		"appointment_rescheduled",
		"appointment",
		&ap.ID,
		map[string]any{"old_start": oldStart, "new_start": newStart},
	)

	return ap, nil
}
