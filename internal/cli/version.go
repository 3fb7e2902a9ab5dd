package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edatools/kicadio/pkg/kicadio"
)

const modulePath = "github.com/edatools/kicadio"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the kicadio version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "kicadio v%s\nmodule: %s\n", kicadio.Version, modulePath)
			return nil
		},
	}
}
