package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Long:  `Migrate creates the tables for the configured DATABASE_URL. It is safe to run repeatedly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := openBackend(cmd.Context(), a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer b.Close()
			if b.db == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "in-memory store: nothing to migrate")
				return nil
			}
			if err := b.migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema ready (%s)\n", b.db.Dialect)
			return nil
		},
	}
}
