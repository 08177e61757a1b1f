// Package scheduler holds the pure distribution functions: daily rate
// computation at material creation time, and per-date task derivation.
// Nothing here touches storage or the system clock.
package scheduler

import (
	"time"

	"github.com/haeunpark/studyplan/internal/dateutil"
)

// InclusiveDays returns the day count of [start, end] counting both ends.
// A single-day range yields 1.
func InclusiveDays(start, end time.Time) int {
	return dateutil.DaysBetween(dateutil.StartOfDay(start), dateutil.StartOfDay(end)) + 1
}

// PagesPerDay returns the fixed daily page quota for a book read across
// [start, end]: ceil(totalPages / inclusive days). Computed once at
// creation and stored on the material.
func PagesPerDay(totalPages int, start, end time.Time) int {
	return ceilDiv(totalPages, InclusiveDays(start, end))
}

// SectionsPerDay returns the stored daily section quota for a video course:
// ceil(sectionCount / inclusive days). The per-date derivation in
// VideoTaskFor deliberately does NOT use this ceiled value; see there.
func SectionsPerDay(sectionCount int, start, end time.Time) int {
	return ceilDiv(sectionCount, InclusiveDays(start, end))
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
