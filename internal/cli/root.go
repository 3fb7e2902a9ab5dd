// Package cli implements the kicadio command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edatools/kicadio/internal/paths"
	"github.com/edatools/kicadio/pkg/codec"
	"github.com/edatools/kicadio/pkg/kicadio"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir  string
	dataDir    string
	strictness string
	jsonMode   bool
}

var flags rootFlags

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// NewRootCmd creates the top-level "kicadio" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "kicadio",
		Short:   "Read, check and write KiCad design files",
		Long:    "Kicadio decodes and encodes KiCad boards, footprints and symbol\nlibraries, and keeps a searchable index of footprint libraries.",
		Version: kicadio.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := resolveConfigDir()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			configDataDir = cfg.GetString(cfgKeyDataDir)
			if flags.strictness == "" {
				flags.strictness = cfg.GetString(cfgKeyStrictness)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.kicadio-db)")
	root.PersistentFlags().StringVar(&flags.strictness, "strictness", "", "decode strictness: strict, failsafe or silent (default: failsafe)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newIndexCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newStatsCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

// resolveConfigDir returns the config directory from flag, env, or
// platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flags.configDir)
}

// resolveDataDir returns the data directory following the precedence
// chain: flag > config.yaml > env > CWD default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flags.dataDir, configDataDir)
}

// resolveStrictness maps the --strictness flag (or config value) to a
// decode mode, defaulting to Failsafe.
func resolveStrictness() (codec.Strictness, error) {
	if flags.strictness == "" {
		return codec.Failsafe, nil
	}
	return codec.ParseStrictness(flags.strictness)
}
