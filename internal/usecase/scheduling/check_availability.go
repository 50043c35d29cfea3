package scheduling

import (
	"context"

	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
)

// ======================================================
// INPUT
// ======================================================

type CheckAvailabilityInput struct {
	SalonID   uint
	ServiceID uint

	Date  string // YYYY-MM-DD
	Start string // HH:mm
	End   string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute decides whether the candidate range is bookable. The cheap policy
// checks (global switch, weekday, hour window) short-circuit before the
// conflict query ever touches the appointment table.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckAvailabilityInput,
) (*domain.AvailabilityResult, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, notFound(err, "service_not_found")
	}

	start, end, err := parseRange(salon, in.Date, in.Start, in.End)
	if err != nil {
		return nil, err
	}

	if ok, reason := domain.CheckPolicy(svc, start, end); !ok {
		return &domain.AvailabilityResult{Available: false, Reason: reason}, nil
	}

	appointments, err := uc.repo.ListAppointmentsOverlapping(
		ctx,
		in.ServiceID,
		start,
		end,
		nil,
	)
	if err != nil {
		return nil, err
	}

	conflicts := domain.FilterConflicts(appointments, start, end, nil)
	if len(conflicts) > 0 {
		return &domain.AvailabilityResult{
			Available: false,
			Reason:    domain.ReasonConflict,
			Conflicts: conflicts,
		}, nil
	}

	return &domain.AvailabilityResult{Available: true}, nil
}
