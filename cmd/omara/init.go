package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erazemk/omara/internal/store"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database and default categories and locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, seeded, err := openStore(cmd.Context(), a.cfg.DB)
			if err != nil {
				return err
			}
			defer database.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database ready: %s\n", a.cfg.DB)
			if !seeded {
				fmt.Fprintln(out, "Defaults already present, nothing to seed.")
				return nil
			}

			ctx := cmd.Context()
			categories, err := store.ListCategories(ctx, database)
			if err != nil {
				return err
			}
			locations, err := store.ListLocations(ctx, database)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Created %d categories and %d locations.\n", len(categories), len(locations))
			return nil
		},
	}
}
