package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edatools/kicadio/internal/catalog"
)

// withCatalog attaches the catalog under the resolved data directory,
// runs fn, and detaches.
func withCatalog(fn func(*catalog.Catalog) error) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	cat := catalog.New()
	if err := cat.Attach(catalog.Config{DataDir: dataDir}); err != nil {
		return fmt.Errorf("attach catalog: %w", err)
	}
	defer cat.Detach()

	return fn(cat)
}

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index DIR",
		Short: "Index footprint libraries under a directory",
		Long:  "Index walks DIR for .kicad_mod files, decodes each one tolerantly and\nrecords it in the catalog database for later searching.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(func(cat *catalog.Catalog) error {
				n, err := cat.Scan(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "indexed %d footprints from %s\n", n, args[0])
				return nil
			})
		},
	}
}
