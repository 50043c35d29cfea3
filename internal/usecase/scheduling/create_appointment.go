package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NovaLinkServices/salon-scheduler/internal/audit"
	"github.com/NovaLinkServices/salon-scheduler/internal/cache"
	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
	"github.com/NovaLinkServices/salon-scheduler/internal/models"
	"github.com/NovaLinkServices/salon-scheduler/internal/notify"
	"github.com/NovaLinkServices/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID uint
	StaffID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
	audit    *audit.Logger
	slots    *cache.SlotCache
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditLog *audit.Logger,
	slots *cache.SlotCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditLog,
		slots:    slots,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Salon
	// --------------------------------------------------
	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Date / time in the salon's timezone
	// --------------------------------------------------
	start, err := parseDateTime(salon, in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Minimum advance notice
	// --------------------------------------------------
	minAdvance := salon.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(salon.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 4. Service + booking policy
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, notFound(err, "service_not_found")
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	if ok, reason := domain.CheckPolicy(svc, start, end); !ok {
		return nil, unavailable(reason, nil)
	}

	// --------------------------------------------------
	// 5. Client (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.SalonID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Guarded booking (conflict check + insert, one tx)
	// --------------------------------------------------
	ap := &models.Appointment{
		PublicRef: uuid.NewString(),
		SalonID:   in.SalonID,
		StaffID:   in.StaffID,
		ClientID:  client.ID,
		ServiceID: svc.ID,
		StartTime: start,
		EndTime:   end,
		Notes:     in.Notes,
	}

	if err := uc.repo.BookAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "time_conflict") || httperr.IsExclusionConflict(err) {
			uc.audit.Log(
				in.SalonID,
				&in.StaffID,
				"appointment_conflict",
				"appointment",
				nil,
				map[string]any{"start": start, "end": end},
			)
			return nil, conflictError(ctx, uc.repo, in.ServiceID, start, end, nil)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 7. Side channels: cache, notification, audit
	// --------------------------------------------------
	if uc.slots != nil {
		uc.slots.Invalidate(ctx, in.StaffID, start)
	}

	uc.notifier.Dispatch(notify.Event{
		SalonID: in.SalonID,
		UserID:  in.StaffID,
		Type:    notify.TypeAppointmentCreated,
		Payload: map[string]any{
			"appointment_id": ap.ID,
			"client_name":    client.Name,
			"start":          ap.StartTime,
			"end":            ap.EndTime,
		},
	})

	uc.audit.Log(
		in.SalonID,
		&in.StaffID,
		"appointment_created",
		"appointment",
		&ap.ID,
		nil,
	)

	return ap, nil
}
