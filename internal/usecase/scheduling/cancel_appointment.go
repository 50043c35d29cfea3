package scheduling

import (
	"context"

	"github.com/NovaLinkServices/salon-scheduler/internal/audit"
	"github.com/NovaLinkServices/salon-scheduler/internal/cache"
	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
	"github.com/NovaLinkServices/salon-scheduler/internal/models"
	"github.com/NovaLinkServices/salon-scheduler/internal/notify"
	"github.com/NovaLinkServices/salon-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
	audit    *audit.Logger
	slots    *cache.SlotCache
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditLog *audit.Logger,
	slots *cache.SlotCache,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditLog,
		slots:    slots,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	salonID uint,
	staffID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForStaff(ctx, appointmentID, staffID)
	if err != nil {
		return nil, notFound(err, "appointment_not_found")
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.slots != nil {
		uc.slots.Invalidate(ctx, staffID, ap.StartTime)
	}

	uc.notifier.Dispatch(notify.Event{
		SalonID: salonID,
		UserID:  staffID,
		Type:    notify.TypeAppointmentCancelled,
		Payload: map[string]any{
			"appointment_id": ap.ID,
			"start":          ap.StartTime,
		},
	})

	uc.audit.Log(
		salonID,
		&staffID,
		"appointment_cancelled",
		"appointment",
		&ap.ID,
		nil,
	)

	return ap, nil
}
