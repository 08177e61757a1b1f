package domain

import "time"

// Material is a unit of study content with a fixed date range and a daily
// rate computed once at creation time. Exactly one of the Book or Video
// field groups is meaningful, selected by Type.
type Material struct {
	ID          string
	Type        MaterialType
	Title       string
	Description string
	Color       string

	StartDate time.Time
	EndDate   time.Time

	// Book fields
	TotalPages  int
	CurrentPage int // last completed page, 0..TotalPages
	PagesPerDay int // ceil(TotalPages / inclusive day count), fixed at creation

	// Video fields
	Sections        []Section
	TotalDuration   int // sum of section durations, minutes
	CurrentProgress int // completed section count, 0..len(Sections)
	SectionsPerDay  int // ceil(len(Sections) / inclusive day count), fixed at creation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Section is one timed unit within a video course.
type Section struct {
	ID        string
	Title     string
	Duration  int // minutes, includes review overhead
	Completed bool
	Order     int // zero-based position within the course
}

// SectionCount returns the number of sections on a video material.
func (m *Material) SectionCount() int {
	return len(m.Sections)
}

// DisplayID returns a short identifier for display, truncating the UUID.
func (m *Material) DisplayID() string {
	if len(m.ID) >= 8 {
		return m.ID[:8]
	}
	return m.ID
}
