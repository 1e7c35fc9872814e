package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pagectl/internal/config"
	"github.com/rshade/pagectl/internal/logging"
	"github.com/rshade/pagectl/internal/pagination"
	"github.com/rshade/pagectl/internal/tui"
)

// ErrNotTerminal is returned when browse is run without an interactive terminal.
var ErrNotTerminal = errors.New("browse requires an interactive terminal; use 'pagectl range' instead")

// defaultBrowseItems is the size of the synthetic dataset.
const defaultBrowseItems = 250

// browseOptions holds the browse command flags.
type browseOptions struct {
	items    int
	page     int
	pageSize int
	latency  time.Duration
}

// NewBrowseCmd creates the browse command, which runs the interactive pager.
func NewBrowseCmd() *cobra.Command {
	var opts browseOptions

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through a synthetic dataset interactively",
		Long: `Opens a full-screen pager over a synthetic dataset.

Keys: ←/→ previous/next, home/end first/last, [ and ] change page size,
: jumps to a page (enter to go, esc to cancel), q quits.`,
		Example: `  # 1,000 items, 25 per page, half a second per fetch
  pagectl browse --items 1000 --page-size 25 --latency 500ms`,
		Annotations: map[string]string{fileLoggingAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.items, "items", defaultBrowseItems, "number of synthetic items")
	cmd.Flags().IntVar(&opts.page, "page", pagination.DefaultPage, "initial page")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "initial page size (default from config)")
	cmd.Flags().DurationVar(&opts.latency, "latency", -1, "simulated fetch latency (default from config)")

	return cmd
}

// browserConfig resolves flags against the global config.
func (o browseOptions) browserConfig(cmd *cobra.Command) (tui.BrowserConfig, error) {
	cfg := config.GetGlobalConfig()

	pageSize := o.pageSize
	if !cmd.Flags().Changed("page-size") {
		pageSize = config.GetDefaultPageSize()
	}
	latency := o.latency
	if !cmd.Flags().Changed("latency") {
		latency = cfg.Pagination.Latency
	}

	params := pagination.Params{Page: o.page, PageSize: pageSize, Total: o.items}
	if err := params.Validate(); err != nil {
		return tui.BrowserConfig{}, err
	}
	if latency < 0 {
		return tui.BrowserConfig{}, fmt.Errorf("%w: got %s", config.ErrInvalidLatency, latency)
	}

	return tui.BrowserConfig{
		Items:           tui.SampleItems(o.items),
		Page:            o.page,
		PageSize:        pageSize,
		PageSizeOptions: config.GetPageSizeOptions(),
		Latency:         latency,
		Logger:          logging.ComponentLogger(logger, "pager"),
	}, nil
}

func runBrowse(cmd *cobra.Command, opts browseOptions) error {
	bcfg, err := opts.browserConfig(cmd)
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdout) {
		return ErrNotTerminal
	}

	logger.Info().
		Int("items", opts.items).
		Int("page_size", bcfg.PageSize).
		Dur("latency", bcfg.Latency).
		Msg("starting browser")

	p := tea.NewProgram(
		tui.NewBrowserModel(bcfg),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
