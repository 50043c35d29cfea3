package scheduling

import (
	"context"

	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
)

// ======================================================
// INPUT
// ======================================================

type FindConflictsInput struct {
	SalonID   uint
	ServiceID uint

	Date  string // YYYY-MM-DD
	Start string // HH:mm
	End   string // HH:mm

	// Set when rechecking during a reschedule, so the appointment does not
	// conflict with itself.
	ExcludeAppointmentID *uint
}

// ======================================================
// USE CASE
// ======================================================

type FindConflicts struct {
	repo domain.Repository
}

func NewFindConflicts(repo domain.Repository) *FindConflicts {
	return &FindConflicts{repo: repo}
}

// Execute is a pure read: it fetches the candidate window once and lets the
// domain decide which rows actually collide. An empty result means the range
// is bookable as far as double-booking goes.
func (uc *FindConflicts) Execute(
	ctx context.Context,
	in FindConflictsInput,
) ([]domain.Conflict, error) {

	if err := checkRangeSyntax(in.Date, in.Start, in.End); err != nil {
		return nil, err
	}

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	start, end, err := parseRange(salon, in.Date, in.Start, in.End)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsOverlapping(
		ctx,
		in.ServiceID,
		start,
		end,
		in.ExcludeAppointmentID,
	)
	if err != nil {
		return nil, err
	}

	return domain.FilterConflicts(appointments, start, end, in.ExcludeAppointmentID), nil
}
