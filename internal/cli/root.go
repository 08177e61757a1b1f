package cli

import (
	"github.com/spf13/cobra"

	"github.com/haeunpark/studyplan/internal/dateutil"
	"github.com/haeunpark/studyplan/internal/repository"
	"github.com/haeunpark/studyplan/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Materials   service.MaterialService
	Plans       service.PlanService
	Completions service.CompletionService
	Settings    repository.SettingsRepo
	Clock       dateutil.Clock

	// IsInteractive reports whether stdin is attached to a terminal.
	// Nil means non-interactive.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "studyplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studyplan",
		Short: "Weekly study scheduler for books and video courses",
	}

	root.AddCommand(
		newMaterialCmd(app),
		newWeekCmd(app),
		newTodayCmd(app),
		newDoneCmd(app),
		newUndoneCmd(app),
		newReminderCmd(app),
	)

	return root
}
