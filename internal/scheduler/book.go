package scheduler

import (
	"fmt"
	"time"

	"github.com/haeunpark/studyplan/internal/dateutil"
	"github.com/haeunpark/studyplan/internal/domain"
)

// bookStartPage is the configured first page of every book. Page ranges
// are 1-based and run through TotalPages.
const bookStartPage = 1

// BookTaskFor derives the page range owed on date for a book material.
// Returns nil when no task is owed: the date falls outside the reading
// window, the book is already read through its last page, or rounding
// exhausted the range before the window ended. A nil task is an expected
// state, not an error.
func BookTaskFor(m *domain.Material, date time.Time) *domain.DailyTask {
	day := dateutil.StartOfDay(date)
	start := dateutil.StartOfDay(m.StartDate)
	end := dateutil.StartOfDay(m.EndDate)

	if day.Before(start) || day.After(end) {
		return nil
	}
	if m.CurrentPage >= m.TotalPages {
		return nil
	}

	dayIndex := dateutil.DaysBetween(start, day)
	startPage := bookStartPage + dayIndex*m.PagesPerDay
	endPage := bookStartPage + (dayIndex+1)*m.PagesPerDay - 1
	if endPage > m.TotalPages {
		endPage = m.TotalPages
	}
	if startPage > m.TotalPages {
		return nil
	}

	return &domain.DailyTask{
		MaterialID:    m.ID,
		MaterialTitle: m.Title,
		MaterialType:  domain.MaterialBook,
		Description:   fmt.Sprintf("%d~%d페이지 읽기", startPage, endPage),
		Completed:     m.CurrentPage >= endPage,
		StartPage:     startPage,
		EndPage:       endPage,
	}
}
