package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"companies-engine/internal/store"
)

func newSeedCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer func() { _ = log.Sync() }()

			cfg, _, err := opts.loadConfig(log)
			if err != nil {
				return err
			}
			db, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			seeded, err := store.SeedListings(cmd.Context(), db.Pool)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d listings into %s\n", len(seeded), db.Path)
			return nil
		},
	}
}
