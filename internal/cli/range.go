package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagectl/internal/pagination"
)

// Output formats.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// NewRangeCmd creates the range command, which prints the window metadata.
func NewRangeCmd() *cobra.Command {
	params := pagination.NewParams()
	var output string

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Show the item range and navigation state for a window",
		Example: `  pagectl range --page 3 --page-size 10 --total 25
  pagectl range --page 2 --page-size 50 --total 1234 --output yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := params.Validate(); err != nil {
				return err
			}
			meta := pagination.NewMeta(params.Window())
			logger.Debug().Interface("meta", meta).Msg("window computed")
			return renderMeta(cmd.OutOrStdout(), meta, output)
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", params.Page, "1-based page number")
	cmd.Flags().IntVar(&params.PageSize, "page-size", params.PageSize, "items per page")
	cmd.Flags().IntVar(&params.Total, "total", params.Total, "total number of items")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json, yaml")

	return cmd
}

// renderMeta writes meta in the requested format.
func renderMeta(w io.Writer, meta pagination.Meta, format string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(meta)
	case outputTable, "":
		return renderMetaTable(w, meta)
	default:
		return fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
	}
}

func renderMetaTable(w io.Writer, meta pagination.Meta) error {
	p := message.NewPrinter(language.English)

	showing := "no items"
	if meta.TotalItems > 0 {
		showing = p.Sprintf("%d - %d of %d", meta.StartItem, meta.EndItem, meta.TotalItems)
	}

	const tabPadding = 2
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "Showing\t%s\n", showing)
	fmt.Fprintf(tw, "Page\t%s\n", p.Sprintf("%d of %d", meta.CurrentPage, max(meta.TotalPages, 1)))
	fmt.Fprintf(tw, "Page size\t%s\n", p.Sprintf("%d", meta.PageSize))
	fmt.Fprintf(tw, "Previous\t%s\n", enabled(meta.HasPrevious))
	fmt.Fprintf(tw, "Next\t%s\n", enabled(meta.HasNext))
	return tw.Flush()
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
