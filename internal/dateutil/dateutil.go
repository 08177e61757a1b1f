package dateutil

import (
	"math"
	"time"
)

// DateLayout is the canonical date-only format used for keys, storage and
// display. All cross-referencing (map keys, completion keys) goes through it.
const DateLayout = "2006-01-02"

// FormatDate renders t as a date-only key, discarding time of day.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns UTC midnight of t's civil date. Stored dates parse as
// UTC while clock values carry the local zone; rebasing both onto one
// location keeps day arithmetic and comparisons date-only, and makes the
// differences DaysBetween sees exact multiples of 24h.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day magnitude between a and b, symmetric in
// argument order and rounded up. Two midnight-normalized dates one calendar
// day apart yield 1.
func DaysBetween(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

// DayOfWeek returns the Sunday-first label for t ("Sunday" .. "Saturday").
func DayOfWeek(t time.Time) string {
	return dayLabels[int(t.Weekday())]
}

var dayLabels = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// WeekStart returns the Sunday beginning the week containing t,
// normalized to midnight.
func WeekStart(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekEnd returns the Saturday ending the week containing t,
// normalized to midnight.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 6)
}

// DateRange returns every date from start to end inclusive, each normalized
// to midnight. A Sunday-Saturday pair yields 7 entries. Returns nil when
// end precedes start.
func DateRange(start, end time.Time) []time.Time {
	first := StartOfDay(start)
	last := StartOfDay(end)
	if last.Before(first) {
		return nil
	}

	var dates []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// IsToday reports whether t falls on the clock's current date.
func IsToday(t time.Time, clock Clock) bool {
	return FormatDate(t) == FormatDate(clock.Now())
}

// IsPast reports whether t's date is strictly before the clock's current
// date. Time of day is discarded on both sides.
func IsPast(t time.Time, clock Clock) bool {
	return StartOfDay(t).Before(StartOfDay(clock.Now()))
}
