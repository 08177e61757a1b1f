package formatter

import (
	"fmt"
	"strings"

	"github.com/haeunpark/studyplan/internal/dateutil"
	"github.com/haeunpark/studyplan/internal/domain"
	"github.com/haeunpark/studyplan/internal/planner"
	"github.com/haeunpark/studyplan/internal/scheduler"
)

// FormatMaterialList renders the registered materials as a table.
func FormatMaterialList(materials []*domain.Material) string {
	headers := []string{"ID", "TYPE", "TITLE", "PERIOD", "RATE", "PROGRESS"}

	rows := make([][]string, 0, len(materials))
	for _, m := range materials {
		rows = append(rows, []string{
			Dim(m.DisplayID()),
			TypeTag(m.Type),
			Bold(m.Title),
			fmt.Sprintf("%s ~ %s", dateutil.FormatDate(m.StartDate), dateutil.FormatDate(m.EndDate)),
			rateColumn(m),
			RenderProgress(planner.CalculateProgress(m), 10),
		})
	}

	return RenderTable(headers, rows)
}

func rateColumn(m *domain.Material) string {
	switch m.Type {
	case domain.MaterialBook:
		return fmt.Sprintf("%dp/day", m.PagesPerDay)
	case domain.MaterialVideo:
		return fmt.Sprintf("%d sec/day", m.SectionsPerDay)
	default:
		return Dim("-")
	}
}

// FormatMaterialDetail renders one material with its schedule summary and,
// for videos, the section listing.
func FormatMaterialDetail(m *domain.Material, clock dateutil.Clock) string {
	var b strings.Builder

	b.WriteString(Header(m.Title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:"), m.ID))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Type:"), TypeTag(m.Type)))
	if m.Description != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Description:"), m.Description))
	}
	b.WriteString(fmt.Sprintf("%s %s ~ %s (%d days left)\n",
		Dim("Period:"),
		dateutil.FormatDate(m.StartDate), dateutil.FormatDate(m.EndDate),
		planner.RemainingDays(m, clock)))

	switch m.Type {
	case domain.MaterialBook:
		b.WriteString(fmt.Sprintf("%s %d pages, %d per day, last read page %d\n",
			Dim("Book:"), m.TotalPages, m.PagesPerDay, m.CurrentPage))
	case domain.MaterialVideo:
		b.WriteString(fmt.Sprintf("%s %d sections (%s), %d per day, %d completed\n",
			Dim("Video:"), len(m.Sections), scheduler.FormatDuration(m.TotalDuration),
			m.SectionsPerDay, m.CurrentProgress))
	}

	b.WriteString(fmt.Sprintf("%s %s", Dim("Progress:"), RenderProgress(planner.CalculateProgress(m), 20)))
	if planner.IsLearningCompleted(m) {
		b.WriteString("  " + StyleGreen.Render("completed"))
	}
	b.WriteString("\n")

	if m.Type == domain.MaterialVideo {
		b.WriteString("\n" + Header("Sections") + "\n")
		for _, s := range m.Sections {
			mark := Dim("○")
			if s.Order < m.CurrentProgress {
				mark = StyleGreen.Render("●")
			}
			b.WriteString(fmt.Sprintf("  %s %2d. %s %s\n",
				mark, s.Order+1, s.Title, Dim(scheduler.FormatDuration(s.Duration))))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
