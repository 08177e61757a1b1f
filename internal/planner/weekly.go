// Package planner composes the scheduler's per-date derivations into
// weekly calendars and progress summaries.
package planner

import (
	"time"

	"github.com/haeunpark/studyplan/internal/dateutil"
	"github.com/haeunpark/studyplan/internal/domain"
	"github.com/haeunpark/studyplan/internal/scheduler"
)

// TaskFor derives the single day-task owed on date for one material, or nil.
// Custom materials are never scheduled; the switch skips them on purpose
// (known gap carried from the material type's introduction).
func TaskFor(m *domain.Material, date time.Time) *domain.DailyTask {
	switch m.Type {
	case domain.MaterialBook:
		return scheduler.BookTaskFor(m, date)
	case domain.MaterialVideo:
		return scheduler.VideoTaskFor(m, date)
	case domain.MaterialCustom:
		return nil
	default:
		return nil
	}
}

// GenerateWeeklyPlan assembles the Sunday-to-Saturday plan for the week
// containing weekOf. A zero weekOf means the clock's current week. Material
// iteration order is preserved within each day.
func GenerateWeeklyPlan(materials []*domain.Material, weekOf time.Time, clock dateutil.Clock) domain.WeeklyPlan {
	if weekOf.IsZero() {
		weekOf = clock.Now()
	}

	weekStart := dateutil.WeekStart(weekOf)
	weekEnd := dateutil.WeekEnd(weekOf)

	plan := domain.WeeklyPlan{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
	}

	for _, date := range dateutil.DateRange(weekStart, weekEnd) {
		day := domain.DailyPlan{
			Date:      date,
			DayOfWeek: dateutil.DayOfWeek(date),
		}
		for _, m := range materials {
			if task := TaskFor(m, date); task != nil {
				day.Tasks = append(day.Tasks, *task)
			}
		}
		plan.Days = append(plan.Days, day)
	}

	return plan
}

// TodayWorkload reports the still-incomplete book tasks owed today.
// Videos are excluded from this summary.
func TodayWorkload(materials []*domain.Material, clock dateutil.Clock) []domain.DailyTask {
	today := clock.Now()

	var tasks []domain.DailyTask
	for _, m := range materials {
		if m.Type != domain.MaterialBook {
			continue
		}
		task := scheduler.BookTaskFor(m, today)
		if task == nil || task.Completed {
			continue
		}
		tasks = append(tasks, *task)
	}
	return tasks
}
