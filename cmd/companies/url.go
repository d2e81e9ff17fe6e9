package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"companies-engine/internal/permalink"
)

func newURLCmd(opts *globalOptions) *cobra.Command {
	var queryForm bool
	cmd := &cobra.Command{
		Use:   "url NAME",
		Short: "Print the profile URL for a company name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer func() { _ = log.Sync() }()

			cfg, _, err := opts.loadConfig(log)
			if err != nil {
				return err
			}
			permalinks := cfg.Directory.Permalinks && !queryForm
			codec := permalink.New(cfg.Site.BaseURL, cfg.Directory.Slug, permalinks, cfg.Directory.TrailingSlash)
			fmt.Fprintln(cmd.OutOrStdout(), codec.ProfileURL(args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&queryForm, "query", false, "use the query-string form even when permalinks are on")
	return cmd
}
