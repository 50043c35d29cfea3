package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgExclusionViolation = "23P01"

// IsExclusionConflict reports whether err comes from the appointments_no_overlap
// exclusion constraint, the database-side backstop for concurrent bookings that
// slip past the in-transaction conflict check.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgExclusionViolation
}
