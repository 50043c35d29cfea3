package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsExclusionConflict(t *testing.T) {
	exclusion := &pgconn.PgError{Code: "23P01", ConstraintName: "appointments_no_overlap"}

	if !IsExclusionConflict(exclusion) {
		t.Fatalf("exclusion violation not detected")
	}
	if !IsExclusionConflict(fmt.Errorf("create appointment: %w", exclusion)) {
		t.Fatalf("wrapped exclusion violation not detected")
	}

	if IsExclusionConflict(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("unique violation must not count as exclusion conflict")
	}
	if IsExclusionConflict(errors.New("plain error")) {
		t.Fatalf("plain error must not count")
	}
	if IsExclusionConflict(nil) {
		t.Fatalf("nil must not count")
	}
}

func TestBusinessError(t *testing.T) {
	err := ErrBusiness("time_conflict")

	if !IsBusiness(err, "time_conflict") {
		t.Fatalf("IsBusiness should match the code")
	}
	if IsBusiness(err, "too_soon") {
		t.Fatalf("IsBusiness must not match a different code")
	}
	if !IsBusiness(fmt.Errorf("book: %w", err), "time_conflict") {
		t.Fatalf("IsBusiness should see through wrapping")
	}
}
