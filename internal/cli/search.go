package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edatools/kicadio/internal/catalog"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search PATTERN",
		Short: "Search indexed footprints by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(func(cat *catalog.Catalog) error {
				entries, err := cat.Search(args[0])
				if err != nil {
					return err
				}

				if flags.jsonMode {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(entries)
				}

				for _, e := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d pads\t%s\n", e.Name, e.Layer, e.Pads, e.File)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d footprints\n", len(entries))
				return nil
			})
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(func(cat *catalog.Catalog) error {
				s, err := cat.Stats()
				if err != nil {
					return err
				}

				if flags.jsonMode {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(s)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "footprints: %d\nwith issues: %d\n", s.Footprints, s.WithIssues)
				return nil
			})
		},
	}
}
