package domain

import "time"

// DailyTask is the computed portion of a material owed on one calendar date.
// Tasks are recomputed on every render and never persisted.
type DailyTask struct {
	MaterialID    string
	MaterialTitle string
	MaterialType  MaterialType
	Description   string

	// Completed is derived from the material's own progress counter
	// (CurrentPage / CurrentProgress). It is independent of the
	// per-(material,date) completion keys the UI overlays.
	Completed bool

	// Book payload
	StartPage int
	EndPage   int

	// Video payload
	SectionTitles []string
}

// DailyPlan is the task set owed on one date.
type DailyPlan struct {
	Date      time.Time
	DayOfWeek string
	Tasks     []DailyTask
}

// WeeklyPlan is the Sunday-to-Saturday aggregation of daily plans across
// all registered materials.
type WeeklyPlan struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Days      []DailyPlan
}

// ReminderSettings is the stored reminder configuration. The scheduling
// core never reads it; it exists for the settings surface only.
type ReminderSettings struct {
	Enabled  bool
	Time     string // "HH:MM"
	Weekdays []int  // 0 = Sunday .. 6 = Saturday
}
