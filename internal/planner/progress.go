package planner

import (
	"math"

	"github.com/haeunpark/studyplan/internal/dateutil"
	"github.com/haeunpark/studyplan/internal/domain"
)

// CalculateProgress returns the material's completion percentage 0..100,
// derived from its stored progress counter. Materials that are neither
// books nor videos report 0.
func CalculateProgress(m *domain.Material) int {
	switch m.Type {
	case domain.MaterialBook:
		if m.TotalPages <= 0 {
			return 0
		}
		pct := int(math.Round(float64(m.CurrentPage) / float64(m.TotalPages) * 100))
		if pct > 100 {
			pct = 100
		}
		return pct
	case domain.MaterialVideo:
		if len(m.Sections) == 0 {
			return 0
		}
		return int(math.Round(float64(m.CurrentProgress) / float64(len(m.Sections)) * 100))
	default:
		return 0
	}
}

// IsLearningCompleted reports whether the material's progress counter has
// reached its total.
func IsLearningCompleted(m *domain.Material) bool {
	switch m.Type {
	case domain.MaterialBook:
		return m.CurrentPage >= m.TotalPages
	case domain.MaterialVideo:
		return len(m.Sections) > 0 && m.CurrentProgress >= len(m.Sections)
	default:
		return false
	}
}

// RemainingDays returns how many days are left until the material's end
// date, 0 once the end date has passed.
func RemainingDays(m *domain.Material, clock dateutil.Clock) int {
	if dateutil.IsPast(m.EndDate, clock) {
		return 0
	}
	return dateutil.DaysBetween(dateutil.StartOfDay(clock.Now()), dateutil.StartOfDay(m.EndDate))
}
