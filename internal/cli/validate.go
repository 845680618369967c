package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wundara/folio-desktop/internal/model"
	"github.com/wundara/folio-desktop/internal/portfolio"
)

// MaxTitleWidth is the column width for titles in the validate output
const MaxTitleWidth = 32

// ErrInvalid is returned by validate when the descriptor has problems
var ErrInvalid = errors.New("portfolio is invalid")

func validateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file-or-dir]",
		Short: "Check a portfolio descriptor and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := v.GetString(KeyPortfolio)
			if len(args) == 1 {
				path = args[0]
			}
			return validatePortfolio(cmd.OutOrStdout(), path)
		},
	}
}

func validatePortfolio(out io.Writer, path string) error {
	p, source, err := readPortfolio(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Portfolio: %s\n", source)
	renderSummary(out, p)
	renderWindows(out, p)

	if err := portfolio.Validate(p); err != nil {
		fmt.Fprintln(out, "Problems:")
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(out, "  - %s\n", line)
		}
		return fmt.Errorf("%w: %s", ErrInvalid, source)
	}
	fmt.Fprintln(out, "OK")
	return nil
}

func renderSummary(out io.Writer, p *model.Portfolio) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"Section", "Count"})
	tw.AppendRow(table.Row{"Desktop icons", len(p.DesktopIcons)})
	tw.AppendRow(table.Row{"Auto-open widgets", len(p.AutoOpenWidgets)})
	tw.AppendRow(table.Row{"Desktop images", len(p.DesktopImages)})
	tw.AppendRow(table.Row{"Dock items", len(p.DockItems)})
	tw.AppendRow(table.Row{"Floating element", boolCount(p.Floating != nil)})
	tw.AppendRow(table.Row{"Music", boolCount(p.Music != nil)})
	tw.Render()
}

func renderWindows(out io.Writer, p *model.Portfolio) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"ID", "Source", "Kind", "Title"})
	for _, icon := range p.DesktopIcons {
		tw.AppendRow(table.Row{icon.ID, "icon", kindOf(icon.Content), truncate(icon.Title)})
	}
	for _, w := range p.AutoOpenWidgets {
		tw.AppendRow(table.Row{w.ID, "widget", kindOf(w.Content), truncate(w.Title)})
	}
	for _, img := range p.DesktopImages {
		tw.AppendRow(table.Row{img.ID, "image", model.KindImage, truncate(img.Name)})
	}
	tw.Render()
}

func kindOf(c model.Content) string {
	if c == nil || c.Kind() == "" {
		return "-"
	}
	return string(c.Kind())
}

func truncate(s string) string {
	return runewidth.Truncate(s, MaxTitleWidth, "…")
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}
