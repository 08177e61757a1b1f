package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haeunpark/studyplan/internal/domain"
)

func newReminderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Show or change reminder settings",
	}

	cmd.AddCommand(newReminderShowCmd(app), newReminderSetCmd(app))
	return cmd
}

func newReminderShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current reminder settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}

			state := "off"
			if s.Enabled {
				state = "on"
			}
			fmt.Printf("Reminders %s at %s", state, s.Time)
			if len(s.Weekdays) > 0 {
				names := make([]string, len(s.Weekdays))
				for i, d := range s.Weekdays {
					names[i] = weekdayName(d)
				}
				fmt.Printf(" on %s", strings.Join(names, ", "))
			}
			fmt.Println()
			return nil
		},
	}
}

func newReminderSetCmd(app *App) *cobra.Command {
	var enabled bool
	var timeOfDay string
	var weekdays []int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update reminder settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTimeOfDay(timeOfDay); err != nil {
				return fmt.Errorf("invalid time %q: %w", timeOfDay, err)
			}
			for _, d := range weekdays {
				if d < 0 || d > 6 {
					return fmt.Errorf("weekday %d out of range 0-6", d)
				}
			}
			return app.Settings.Upsert(context.Background(), &domain.ReminderSettings{
				Enabled:  enabled,
				Time:     timeOfDay,
				Weekdays: weekdays,
			})
		},
	}

	cmd.Flags().BoolVar(&enabled, "on", false, "Enable reminders")
	cmd.Flags().StringVar(&timeOfDay, "time", "09:00", "Reminder time (HH:MM)")
	cmd.Flags().IntSliceVar(&weekdays, "days", nil, "Weekdays 0-6, Sunday first")

	return cmd
}

func weekdayName(d int) string {
	names := [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if d < 0 || d > 6 {
		return "?"
	}
	return names[d]
}
