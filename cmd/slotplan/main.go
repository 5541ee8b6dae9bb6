package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"slotplan/internal/cli"
	"slotplan/internal/db"
	"slotplan/internal/repository"
	"slotplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional ~/.slotplan.yaml plus SLOTPLAN_* env vars.
func loadConfig() (*viper.Viper, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetDefault("db_path", filepath.Join(home, ".slotplan", "slotplan.db"))

	v.SetConfigName(".slotplan")
	v.SetConfigType("yaml")
	v.AddConfigPath(home)

	v.SetEnvPrefix("SLOTPLAN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return v, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.GetString("db_path"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	slotRepo := repository.NewSQLiteClosedSlotRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	runRepo := repository.NewSQLiteScheduleRunRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Tasks:    service.NewTaskService(taskRepo),
		Slots:    service.NewSlotService(slotRepo),
		Settings: service.NewSettingsService(settingsRepo),
		Plan:     service.NewPlanService(taskRepo, slotRepo, settingsRepo, runRepo, uow),
		Imports:  service.NewImportService(uow),
	}

	// Detect interactive terminal for form and pager entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
