package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edatools/kicadio/pkg/sexpr"
)

func newFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt FILE...",
		Short: "Reformat design files in canonical style",
		Long:  "Fmt tokenizes each file and re-renders it with canonical indentation\nand quoting. No schema is applied, so unrecognized content survives\nuntouched.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				list, err := sexpr.Parse(string(data))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				text := sexpr.Format(list) + "\n"

				if write {
					if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
						return err
					}
					continue
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file instead of stdout")
	return cmd
}
