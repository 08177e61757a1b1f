package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/haeunpark/studyplan/internal/cli/formatter"
	"github.com/haeunpark/studyplan/internal/dateutil"
	"github.com/haeunpark/studyplan/internal/service"
)

// studyHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func studyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateTimeOfDay(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("use HH:MM")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// runBookForm collects book registration fields interactively.
func runBookForm(clock dateutil.Clock) (*service.CreateBookInput, error) {
	today := dateutil.FormatDate(clock.Now())

	var title, desc, pages string
	start := today
	end := today

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description (optional)").
				Value(&desc),
			huh.NewInput().
				Title("Total pages").
				Placeholder("320").
				Value(&pages).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Placeholder(today).
				Value(&start).
				Validate(validateDate),
			huh.NewInput().
				Title("End date (YYYY-MM-DD)").
				Placeholder(today).
				Value(&end).
				Validate(validateDate),
		),
	).WithTheme(studyHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}

	totalPages, _ := strconv.Atoi(pages)
	startDate, _ := time.Parse("2006-01-02", start)
	endDate, _ := time.Parse("2006-01-02", end)

	return &service.CreateBookInput{
		Title:       title,
		Description: desc,
		TotalPages:  totalPages,
		StartDate:   startDate,
		EndDate:     endDate,
	}, nil
}
