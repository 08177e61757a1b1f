package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// done/undone manage the hand-checked (material, date) set. They do not
// touch the material's own progress counter; `material progress` does that.
func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID [DATE]",
		Short: "Check off a material's task for a date (defaults to today)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setCompletion(app, args, true)
		},
	}
}

func newUndoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undone ID [DATE]",
		Short: "Remove a material's checkmark for a date (defaults to today)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setCompletion(app, args, false)
		},
	}
}

func setCompletion(app *App, args []string, done bool) error {
	ctx := context.Background()
	id, err := resolveMaterialID(ctx, app, args[0])
	if err != nil {
		return err
	}

	date := app.Clock.Now()
	if len(args) == 2 {
		date, err = time.Parse("2006-01-02", args[1])
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", args[1], err)
		}
	}

	current, err := app.Completions.IsCompleted(ctx, id, date)
	if err != nil {
		return err
	}
	if current != done {
		if _, err := app.Completions.Toggle(ctx, id, date); err != nil {
			return err
		}
	}

	state := "unchecked"
	if done {
		state = "checked"
	}
	fmt.Printf("%s %s for %s\n", state, id[:8], date.Format("2006-01-02"))
	return nil
}
