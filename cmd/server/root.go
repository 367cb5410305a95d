package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"holocron/internal/platform/config"
	"holocron/internal/platform/logger"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configFile string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "holocron",
		Short: "Holocron serves people, planets and user favorites over HTTP",
		Long: `Holocron is a REST backend over users, people, planets and the favorite
links between them.

Running holocron without a subcommand starts the HTTP server. Configuration
comes from an optional YAML file (--config), a .env file, and environment
variables such as DATABASE_URL, PORT and REDIS_URL.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		RunE:              a.serve,
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (YAML)")

	root.AddCommand(newServeCommand(a))
	root.AddCommand(newMigrateCommand(a))
	root.AddCommand(newUserCommand(a))
	root.AddCommand(newSeedCommand(a))
	return root
}

// load reads configuration and installs the logger.
func (a *app) load(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.logger = logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(a.logger)
	if cfg.File != "" {
		a.logger.Debug("config file loaded", "path", cfg.File)
	}
	return nil
}
