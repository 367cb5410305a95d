package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"holocron/internal/access/service"
	"holocron/internal/seed"
)

func newSeedCommand(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load people and planets from a YAML file",
		Long: `Seed creates every person and planet listed in the file through the same
service the API uses.

Example:
  holocron seed --file fixtures/starwars.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open seed file: %w", err)
			}
			defer f.Close()
			fixtures, err := seed.Parse(f)
			if err != nil {
				return err
			}

			b, err := openBackend(cmd.Context(), a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer b.Close()
			if err := b.migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			svc := service.New(b.catalog, b.favorites, b.tx, service.WithLogger(a.logger))
			res, err := seed.Apply(cmd.Context(), svc, fixtures)
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d people, %d planets\n", res.People, res.Planets)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixture file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
