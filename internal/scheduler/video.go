package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/haeunpark/studyplan/internal/dateutil"
	"github.com/haeunpark/studyplan/internal/domain"
)

// VideoTaskFor derives the section slice owed on date for a video material.
// Returns nil when no task is owed (date out of range, course finished, or
// the day's slice is empty).
//
// The slice boundaries use the fractional rate len(Sections)/days computed
// fresh here, NOT the ceiled SectionsPerDay stored on the material. The two
// differ whenever the division is non-integral; the fractional rate is what
// guarantees every section is owed exactly once across the full range.
func VideoTaskFor(m *domain.Material, date time.Time) *domain.DailyTask {
	day := dateutil.StartOfDay(date)
	start := dateutil.StartOfDay(m.StartDate)
	end := dateutil.StartOfDay(m.EndDate)

	if day.Before(start) || day.After(end) {
		return nil
	}

	total := len(m.Sections)
	if total == 0 || m.CurrentProgress >= total {
		return nil
	}

	days := InclusiveDays(start, end)
	rate := float64(total) / float64(days)

	dayIndex := dateutil.DaysBetween(start, day)
	startIndex := int(math.Floor(float64(dayIndex) * rate))
	endIndex := int(math.Floor(float64(dayIndex+1) * rate))
	// The last day always runs through the final section; float drift in
	// days*rate must not strand it.
	if dayIndex == days-1 || endIndex > total {
		endIndex = total
	}
	if startIndex >= total || startIndex >= endIndex {
		return nil
	}

	slice := m.Sections[startIndex:endIndex]
	titles := make([]string, len(slice))
	minutes := 0
	for i, s := range slice {
		titles[i] = s.Title
		minutes += s.Duration
	}

	return &domain.DailyTask{
		MaterialID:    m.ID,
		MaterialTitle: m.Title,
		MaterialType:  domain.MaterialVideo,
		Description:   fmt.Sprintf("섹션 %d개 수강 (%s)", len(slice), FormatDuration(minutes)),
		Completed:     m.CurrentProgress >= endIndex,
		SectionTitles: titles,
	}
}
