package scheduling

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/NovaLinkServices/salon-scheduler/internal/domain/scheduling"
	"github.com/NovaLinkServices/salon-scheduler/internal/httperr"
)

// UnavailableError surfaces a failed availability decision with the
// user-visible reason and, for conflicts, the colliding appointments.
type UnavailableError struct {
	Result *domain.AvailabilityResult
}

func (e *UnavailableError) Error() string {
	return e.Result.Reason
}

func unavailable(reason string, conflicts []domain.Conflict) error {
	return &UnavailableError{
		Result: &domain.AvailabilityResult{
			Available: false,
			Reason:    reason,
			Conflicts: conflicts,
		},
	}
}

// notFound maps a missing row to the given business code and leaves every
// other store failure untouched, so outages surface as outages and not as
// 404s.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}

// conflictError rebuilds the conflict list after a guarded write refused the
// range, so the caller can show which appointments collided. Shared by
// booking and rescheduling.
func conflictError(
	ctx context.Context,
	repo domain.Repository,
	serviceID uint,
	start time.Time,
	end time.Time,
	excludeID *uint,
) error {

	appointments, err := repo.ListAppointmentsOverlapping(ctx, serviceID, start, end, excludeID)
	if err != nil {
		return unavailable(domain.ReasonConflict, nil)
	}

	return unavailable(
		domain.ReasonConflict,
		domain.FilterConflicts(appointments, start, end, excludeID),
	)
}
