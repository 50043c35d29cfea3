package scheduling

import (
	"context"

	"github.com/NovaLinkServices/salon-scheduler/internal/audit"
	"github.com/NovaLinkServices/salon-scheduler/internal/cache"
	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
	"github.com/NovaLinkServices/salon-scheduler/internal/notify"
	"github.com/NovaLinkServices/salon-scheduler/internal/timezone"
)

type DeleteAppointment struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
	audit    *audit.Logger
	slots    *cache.SlotCache
}

func NewDeleteAppointment(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditLog *audit.Logger,
	slots *cache.SlotCache,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditLog,
		slots:    slots,
	}
}

// Execute soft deletes: the row survives but stops counting against any
// conflict or availability computation.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	salonID uint,
	staffID uint,
	appointmentID uint,
) error {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return err
	}

	ap, err := uc.repo.GetAppointmentForStaff(ctx, appointmentID, staffID)
	if err != nil {
		return notFound(err, "appointment_not_found")
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.SoftDelete(ap, now); err != nil {
		return err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return err
	}

	if uc.slots != nil {
		uc.slots.Invalidate(ctx, staffID, ap.StartTime)
	}

	uc.notifier.Dispatch(notify.Event{
		SalonID: salonID,
		UserID:  staffID,
		Type:    notify.TypeAppointmentDeleted,
		Payload: map[string]any{"appointment_id": ap.ID},
	})

	uc.audit.Log(
		salonID,
		&staffID,
		"appointment_deleted",
		"appointment",
		&ap.ID,
		nil,
	)

	return nil
}
