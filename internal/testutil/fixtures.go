package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haeunpark/studyplan/internal/domain"
	"github.com/haeunpark/studyplan/internal/scheduler"
)

// FixedClock is a deterministic Clock for tests.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// ClockAt returns a FixedClock pinned to the given date at noon UTC, so
// midnight normalization is actually exercised.
func ClockAt(year int, month time.Month, day int) FixedClock {
	return FixedClock{T: time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

// ClockAtIn returns a FixedClock pinned to noon of the given civil date in
// loc, for exercising clocks outside UTC.
func ClockAtIn(year int, month time.Month, day int, loc *time.Location) FixedClock {
	return FixedClock{T: time.Date(year, month, day, 12, 0, 0, 0, loc)}
}

// Material options
type MaterialOption func(*domain.Material)

func WithCurrentPage(p int) MaterialOption {
	return func(m *domain.Material) { m.CurrentPage = p }
}

func WithCurrentProgress(p int) MaterialOption {
	return func(m *domain.Material) { m.CurrentProgress = p }
}

func WithColor(c string) MaterialOption {
	return func(m *domain.Material) { m.Color = c }
}

// NewTestBook builds a book material with its daily rate computed the same
// way registration does.
func NewTestBook(title string, totalPages int, start, end time.Time, opts ...MaterialOption) *domain.Material {
	now := time.Now().UTC()
	m := &domain.Material{
		ID:          uuid.New().String(),
		Type:        domain.MaterialBook,
		Title:       title,
		StartDate:   start,
		EndDate:     end,
		TotalPages:  totalPages,
		PagesPerDay: scheduler.PagesPerDay(totalPages, start, end),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewTestVideo builds a video material with n sections of the given
// duration each.
func NewTestVideo(title string, n, sectionMin int, start, end time.Time, opts ...MaterialOption) *domain.Material {
	now := time.Now().UTC()

	sections := make([]domain.Section, n)
	for i := range sections {
		sections[i] = domain.Section{
			ID:       uuid.New().String(),
			Title:    fmt.Sprintf("%s %d강", title, i+1),
			Duration: sectionMin,
			Order:    i,
		}
	}

	m := &domain.Material{
		ID:             uuid.New().String(),
		Type:           domain.MaterialVideo,
		Title:          title,
		StartDate:      start,
		EndDate:        end,
		Sections:       sections,
		TotalDuration:  n * sectionMin,
		SectionsPerDay: scheduler.SectionsPerDay(n, start, end),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Date is shorthand for a midnight UTC date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
