package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/pagectl/internal/config"
	"github.com/rshade/pagectl/internal/logging"
)

// isTerminal checks if the given file is a terminal.
//
//nolint:gochecknoglobals // Replaced in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pagectl CLI.
// It loads configuration, wires up logging, and registers the browse, range
// and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "pagectl",
		Short:         "Interactive pagination control",
		Long:          "pagectl: browse a dataset page by page and inspect pagination windows",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(configPath); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $PAGECTL_HOME/config.yaml)")
	cmd.AddCommand(NewBrowseCmd(), NewRangeCmd(), newConfigCmd())

	return cmd
}

// loadConfig reads path, or the default location when empty, into the global config.
func loadConfig(path string) error {
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration %q: %w", path, err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Browse 1,000 synthetic items, 25 per page
  pagectl browse --items 1000 --page-size 25

  # Show the window for page 3 of 25 items at 10 per page
  pagectl range --page 3 --page-size 10 --total 25

  # Same, as JSON
  pagectl range --page 3 --page-size 10 --total 25 --output json

  # Show the effective configuration
  pagectl config show`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration commands"}
	cmd.AddCommand(NewConfigShowCmd(), NewConfigValidateCmd(), NewConfigInitCmd())
	return cmd
}
