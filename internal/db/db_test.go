package db

import (
	"strings"
	"testing"
)

// The overlap constraint has to match the column types AutoMigrate produces:
// time.Time maps to timestamptz, and tsrange over timestamptz does not exist
// in Postgres, so the constraint would silently never be created.
func TestNoOverlapConstraintMatchesColumnTypes(t *testing.T) {
	if !strings.Contains(noOverlapConstraintDDL, "tstzrange(start_time, end_time)") {
		t.Fatalf("constraint must range over timestamptz columns:\n%s", noOverlapConstraintDDL)
	}
	if strings.Contains(noOverlapConstraintDDL, " tsrange(") {
		t.Fatalf("tsrange has no timestamptz overload:\n%s", noOverlapConstraintDDL)
	}
	if !strings.Contains(noOverlapConstraintDDL, "NOT is_cancelled AND NOT is_deleted") {
		t.Fatalf("cancelled and deleted rows must stay bookable:\n%s", noOverlapConstraintDDL)
	}
}
