package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/haeunpark/studyplan/internal/cli/formatter"
)

func newWeekCmd(app *App) *cobra.Command {
	var dateStr string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly study calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			var weekOf time.Time
			if dateStr != "" {
				parsed, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
				weekOf = parsed
			}

			if interactive {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("interactive week view needs a terminal")
				}
				model := newWeekModel(app, weekOf)
				_, err := tea.NewProgram(model).Run()
				return err
			}

			ctx := context.Background()
			plan, err := app.Plans.WeeklyPlan(ctx, weekOf)
			if err != nil {
				return err
			}
			keys, err := app.Completions.Keys(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatWeeklyPlan(plan, keys, app.Clock))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Any date inside the target week (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse weeks interactively")

	return cmd
}

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's remaining book workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Plans.TodayWorkload(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatTodayWorkload(tasks))
			return nil
		},
	}
}
