package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"companies-engine/internal/directory"
	"companies-engine/internal/domain"
	"companies-engine/internal/permalink"
	"companies-engine/internal/store"
)

func newDirectoryCmd(opts *globalOptions) *cobra.Command {
	var withURLs bool
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Print the grouped company directory",
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

			listings := store.NewListings(db.Pool, cfg.Store.QueryTimeout)
			svc := directory.NewService(directory.NewAggregator(listings), directory.NewGrouper())
			buckets, err := svc.Buckets(cmd.Context())
			if err != nil {
				return err
			}

			var codec *permalink.Codec
			if withURLs {
				codec = permalink.New(cfg.Site.BaseURL, cfg.Directory.Slug, cfg.Directory.Permalinks, cfg.Directory.TrailingSlash)
			}
			printDirectory(cmd.OutOrStdout(), buckets, codec)
			return nil
		},
	}
	cmd.Flags().BoolVar(&withURLs, "urls", false, "print each company's profile URL")
	return cmd
}

func printDirectory(w io.Writer, buckets domain.Buckets, codec *permalink.Codec) {
	r := lipgloss.NewRenderer(w)
	letter := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	count := r.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	link := r.NewStyle().Faint(true)

	nonEmpty := buckets.NonEmpty()
	if len(nonEmpty) == 0 {
		fmt.Fprintln(w, "no companies with open listings")
		return
	}
	for i, b := range nonEmpty {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, letter.Render(b.Label))
		for _, c := range b.Companies {
			line := fmt.Sprintf("  %s %s", c.Name, count.Render(fmt.Sprintf("(%d)", c.OpenListingCount)))
			if codec != nil {
				line += "  " + link.Render(codec.ProfileURL(c.Name))
			}
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintf(w, "\n%d companies\n", buckets.Len())
}
