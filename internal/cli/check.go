package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edatools/kicadio/pkg/codec"
)

// checkReport is the per-file result in JSON output mode.
type checkReport struct {
	File   string   `json:"file"`
	OK     bool     `json:"ok"`
	Error  string   `json:"error,omitempty"`
	Issues []string `json:"issues,omitempty"`
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Decode design files and report issues",
		Long:  "Check decodes each file under the configured strictness and reports\nevery issue found. The exit status is non-zero if any file failed or\nproduced issues.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := resolveStrictness()
			if err != nil {
				return err
			}

			var reports []checkReport
			failed := 0
			for _, path := range args {
				r := checkReport{File: path, OK: true}
				_, issues, err := loadDocument(path, mode)
				if err != nil {
					r.OK = false
					r.Error = err.Error()
				}
				for _, issue := range issues {
					r.Issues = append(r.Issues, issue.String())
				}
				if !r.OK || len(r.Issues) > 0 {
					failed++
				}
				reports = append(reports, r)
			}

			if flags.jsonMode {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return err
				}
			} else {
				printCheckReports(cmd, reports, mode)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files had problems", failed, len(args))
			}
			return nil
		},
	}
}

func printCheckReports(cmd *cobra.Command, reports []checkReport, mode codec.Strictness) {
	out := cmd.OutOrStdout()
	for _, r := range reports {
		switch {
		case !r.OK:
			fmt.Fprintf(out, "%s: FAIL: %s\n", r.File, r.Error)
		case len(r.Issues) > 0:
			fmt.Fprintf(out, "%s: %d issues (%s)\n", r.File, len(r.Issues), mode)
			for _, issue := range r.Issues {
				fmt.Fprintf(out, "  %s\n", issue)
			}
		default:
			fmt.Fprintf(out, "%s: ok\n", r.File)
		}
	}
}
