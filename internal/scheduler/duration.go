package scheduler

import "fmt"

// SplitDuration breaks minutes into whole hours and leftover minutes.
func SplitDuration(minutes int) (int, int) {
	return minutes / 60, minutes % 60
}

// FormatDuration renders a minute count for display: "2시간 5분",
// "1시간" when the remainder is zero, "45분" under one hour.
func FormatDuration(minutes int) string {
	h, m := SplitDuration(minutes)
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%d시간 %d분", h, m)
	case h > 0:
		return fmt.Sprintf("%d시간", h)
	default:
		return fmt.Sprintf("%d분", m)
	}
}
