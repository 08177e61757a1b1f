package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/haeunpark/studyplan/internal/cli"
	"github.com/haeunpark/studyplan/internal/config"
	"github.com/haeunpark/studyplan/internal/dateutil"
	"github.com/haeunpark/studyplan/internal/db"
	"github.com/haeunpark/studyplan/internal/repository"
	"github.com/haeunpark/studyplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("STUDYPLAN_CONFIG"))
	if err != nil {
		return err
	}

	var (
		materialRepo   repository.MaterialRepo
		completionRepo repository.CompletionRepo
		settingsRepo   repository.SettingsRepo
	)

	switch cfg.Storage.Backend {
	case "memory":
		store := repository.NewMemoryStore()
		materialRepo = store
		completionRepo = store
		settingsRepo = store
	default:
		database, err := db.OpenDB(cfg.Storage.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		materialRepo = repository.NewTxMaterialRepo(database)
		completionRepo = repository.NewSQLiteCompletionRepo(database)
		settingsRepo = repository.NewSQLiteSettingsRepo(database)
	}

	clock := dateutil.SystemClock{}

	app := &cli.App{
		Materials:   service.NewMaterialService(materialRepo),
		Plans:       service.NewPlanService(materialRepo, clock),
		Completions: service.NewCompletionService(completionRepo),
		Settings:    settingsRepo,
		Clock:       clock,
	}

	// The interactive week view needs a real terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
