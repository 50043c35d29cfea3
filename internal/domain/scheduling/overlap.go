package scheduling

import "time"

// Overlaps reports whether the half-open ranges [s1,e1) and [s2,e2)
// intersect. Adjacent ranges sharing a boundary never overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
