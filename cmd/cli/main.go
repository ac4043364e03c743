package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/superhelt/wow-raid-planner/cmd/cli/commands"
	"github.com/superhelt/wow-raid-planner/internal/config"
	"github.com/superhelt/wow-raid-planner/pkg/postgres"
	"github.com/superhelt/wow-raid-planner/pkg/utils/logging"
)

var (
	app      = &commands.AppContext{}
	database *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "raidplanner",
		Short: "WoW Raid Planner CLI - Manage raid signups and rosters",
		Long:  `A CLI tool for managing raid schedules, signups, encounter rosters, and bench statistics.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if database != nil {
				database.Close()
			}
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.AddCommand(commands.PlanRaidsCmd(app))
	rootCmd.AddCommand(commands.SignupCmd(app))
	rootCmd.AddCommand(commands.UnsignCmd(app))
	rootCmd.AddCommand(commands.AddEncounterCmd(app))
	rootCmd.AddCommand(commands.DeleteEncounterCmd(app))
	rootCmd.AddCommand(commands.AssignCmd(app))
	rootCmd.AddCommand(commands.UnassignCmd(app))
	rootCmd.AddCommand(commands.FinalizeCmd(app))
	rootCmd.AddCommand(commands.ReopenCmd(app))
	rootCmd.AddCommand(commands.BenchCmd(app))
	rootCmd.AddCommand(commands.ViewRaidCmd(app))
	rootCmd.AddCommand(commands.SuggestCmd(app))
	rootCmd.AddCommand(commands.AddEventCmd(app))
	rootCmd.AddCommand(commands.RemoveEventCmd(app))
	rootCmd.AddCommand(commands.SendSignupRemindersCmd(app))
	rootCmd.AddCommand(commands.ListPlayersCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and database
func initApp() error {
	var err error

	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger("cli")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application")

	app.Logger.Debug("Loading configuration")
	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger.Debug("Connecting to database")
	database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Database = database
	app.Logger.Info("Database initialized successfully")

	return nil
}
