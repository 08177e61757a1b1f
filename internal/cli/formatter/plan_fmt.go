package formatter

import (
	"fmt"
	"strings"

	"github.com/haeunpark/studyplan/internal/dateutil"
	"github.com/haeunpark/studyplan/internal/domain"
	"github.com/haeunpark/studyplan/internal/repository"
)

// FormatWeeklyPlan renders the seven-day calendar. completionKeys is the
// externally tracked checkmark set; a task shows two independent marks:
// ● when its own progress counter says done, ✓ when the date was checked
// off by hand.
func FormatWeeklyPlan(plan domain.WeeklyPlan, completionKeys map[string]bool, clock dateutil.Clock) string {
	var b strings.Builder

	title := fmt.Sprintf("Week %s ~ %s",
		dateutil.FormatDate(plan.WeekStart), dateutil.FormatDate(plan.WeekEnd))
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	for _, day := range plan.Days {
		label := fmt.Sprintf("%s  %s", dateutil.FormatDate(day.Date), day.DayOfWeek)
		if dateutil.IsToday(day.Date, clock) {
			b.WriteString(StyleHeader.Render(label + "  ← today"))
		} else {
			b.WriteString(Bold(label))
		}
		b.WriteString("\n")

		if len(day.Tasks) == 0 {
			b.WriteString(Dim("  (no tasks)") + "\n")
			continue
		}

		for _, task := range day.Tasks {
			b.WriteString("  " + FormatTaskLine(task, completionKeys[repository.CompletionKey(task.MaterialID, day.Date)]))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FormatTaskLine renders one task row with both completion signals.
func FormatTaskLine(task domain.DailyTask, checkedOff bool) string {
	progressMark := StyleDim.Render("○")
	if task.Completed {
		progressMark = StyleGreen.Render("●")
	}
	checkMark := " "
	if checkedOff {
		checkMark = StyleGreen.Render("✓")
	}

	return fmt.Sprintf("%s %s %s %s  %s",
		progressMark, checkMark, TypeTag(task.MaterialType),
		Bold(task.MaterialTitle), StyleFg.Render(task.Description))
}

// FormatTodayWorkload renders the incomplete book tasks owed today.
func FormatTodayWorkload(tasks []domain.DailyTask) string {
	if len(tasks) == 0 {
		return Dim("Nothing left to read today.")
	}

	var b strings.Builder
	b.WriteString(Header("Today's reading"))
	b.WriteString("\n\n")
	for _, task := range tasks {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			TypeTag(task.MaterialType), Bold(task.MaterialTitle), task.Description))
	}
	return strings.TrimRight(b.String(), "\n")
}
