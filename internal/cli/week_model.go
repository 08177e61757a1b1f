package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haeunpark/studyplan/internal/cli/formatter"
	"github.com/haeunpark/studyplan/internal/dateutil"
	"github.com/haeunpark/studyplan/internal/domain"
	"github.com/haeunpark/studyplan/internal/repository"
)

// weekRow is a flattened row in the calendar: either a day header or one
// task under it.
type weekRow struct {
	isDay bool
	date  time.Time
	label string
	task  domain.DailyTask
}

// weekLoadedMsg signals that the plan and completion keys were loaded.
type weekLoadedMsg struct {
	plan domain.WeeklyPlan
	keys map[string]bool
	err  error
}

type weekKeymap struct {
	PrevWeek key.Binding
	NextWeek key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Quit     key.Binding
}

func newWeekKeymap() weekKeymap {
	return weekKeymap{
		PrevWeek: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev week")),
		NextWeek: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next week")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "check off")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// weekModel is the interactive weekly calendar. Space toggles the
// hand-checked completion key of the selected task; the task's own
// progress-derived state renders as a separate mark and is never written
// from here.
type weekModel struct {
	app     *App
	weekOf  time.Time
	plan    domain.WeeklyPlan
	keys    map[string]bool
	rows    []weekRow
	cursor  int
	loading bool
	err     error
	keymap  weekKeymap
}

func newWeekModel(app *App, weekOf time.Time) *weekModel {
	if weekOf.IsZero() {
		weekOf = app.Clock.Now()
	}
	return &weekModel{
		app:     app,
		weekOf:  weekOf,
		loading: true,
		keymap:  newWeekKeymap(),
	}
}

func (m *weekModel) Init() tea.Cmd {
	return m.loadWeek()
}

func (m *weekModel) loadWeek() tea.Cmd {
	app := m.app
	weekOf := m.weekOf
	return func() tea.Msg {
		ctx := context.Background()
		plan, err := app.Plans.WeeklyPlan(ctx, weekOf)
		if err != nil {
			return weekLoadedMsg{err: err}
		}
		keys, err := app.Completions.Keys(ctx)
		return weekLoadedMsg{plan: plan, keys: keys, err: err}
	}
}

func (m *weekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weekLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.plan = msg.plan
		m.keys = msg.keys
		m.rebuildRows()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keymap.PrevWeek):
			m.weekOf = m.weekOf.AddDate(0, 0, -7)
			m.loading = true
			return m, m.loadWeek()

		case key.Matches(msg, m.keymap.NextWeek):
			m.weekOf = m.weekOf.AddDate(0, 0, 7)
			m.loading = true
			return m, m.loadWeek()

		case key.Matches(msg, m.keymap.Up):
			m.moveCursor(-1)
			return m, nil

		case key.Matches(msg, m.keymap.Down):
			m.moveCursor(1)
			return m, nil

		case key.Matches(msg, m.keymap.Toggle):
			return m, m.toggleSelected()
		}
	}

	return m, nil
}

func (m *weekModel) rebuildRows() {
	m.rows = m.rows[:0]
	for _, day := range m.plan.Days {
		m.rows = append(m.rows, weekRow{
			isDay: true,
			date:  day.Date,
			label: fmt.Sprintf("%s  %s", dateutil.FormatDate(day.Date), day.DayOfWeek),
		})
		for _, task := range day.Tasks {
			m.rows = append(m.rows, weekRow{date: day.Date, task: task})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = 0
	}
	m.snapToTask(1)
}

// moveCursor steps over day-header rows in the given direction.
func (m *weekModel) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	next := m.cursor + delta
	for next >= 0 && next < len(m.rows) && m.rows[next].isDay {
		next += delta
	}
	if next >= 0 && next < len(m.rows) {
		m.cursor = next
	}
}

// snapToTask moves the cursor onto the nearest task row if it sits on a
// header.
func (m *weekModel) snapToTask(delta int) {
	if m.cursor < len(m.rows) && m.rows[m.cursor].isDay {
		m.moveCursor(delta)
	}
}

func (m *weekModel) toggleSelected() tea.Cmd {
	if m.cursor >= len(m.rows) || m.rows[m.cursor].isDay {
		return nil
	}
	row := m.rows[m.cursor]
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := app.Completions.Toggle(ctx, row.task.MaterialID, row.date); err != nil {
			return weekLoadedMsg{err: err}
		}
		plan, err := app.Plans.WeeklyPlan(ctx, m.weekOf)
		if err != nil {
			return weekLoadedMsg{err: err}
		}
		keys, err := app.Completions.Keys(ctx)
		return weekLoadedMsg{plan: plan, keys: keys, err: err}
	}
}

func (m *weekModel) View() string {
	if m.loading {
		return formatter.Dim("Loading week...")
	}
	if m.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder
	title := fmt.Sprintf("Week %s ~ %s",
		dateutil.FormatDate(m.plan.WeekStart), dateutil.FormatDate(m.plan.WeekEnd))
	b.WriteString(formatter.Header(title))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		if row.isDay {
			if dateutil.IsToday(row.date, m.app.Clock) {
				b.WriteString(formatter.StyleHeader.Render(row.label + "  ← today"))
			} else {
				b.WriteString(formatter.Bold(row.label))
			}
			b.WriteString("\n")
			continue
		}

		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
		}
		checked := m.keys[repository.CompletionKey(row.task.MaterialID, row.date)]
		b.WriteString(cursor + formatter.FormatTaskLine(row.task, checked))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("←/→ week · ↑/↓ move · space check off · q quit"))
	return b.String()
}
