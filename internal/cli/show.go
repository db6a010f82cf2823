package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowsheet-tools/flowconn/pkg/extract"
	"github.com/flowsheet-tools/flowconn/pkg/format"
	"github.com/flowsheet-tools/flowconn/pkg/model"
)

// showCommand creates the show command: extract a model source and
// display its connectivity matrix in the terminal.
func (c *CLI) showCommand() *cobra.Command {
	var includeIsolated bool

	cmd := &cobra.Command{
		Use:   "show [source]",
		Short: "Display the connectivity matrix in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd, args[0], includeIsolated)
		},
	}

	cmd.Flags().BoolVar(&includeIsolated, "include-isolated", false, "include declared units with no incident arcs")

	return cmd
}

func (c *CLI) runShow(cmd *cobra.Command, source string, includeIsolated bool) error {
	m, err := model.Load(source)
	if err != nil {
		return err
	}
	res, err := extract.Extract(m, extract.Options{IncludeIsolated: includeIsolated})
	if err != nil {
		return err
	}

	rows := format.Table{}.Rows(res.Graph)
	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderMatrix(rows))
	for _, w := range res.Warnings {
		fmt.Fprintln(out, styleWarning.Render("! "+w))
	}
	return nil
}

// renderMatrix lays the matrix rows out in aligned, styled columns.
func renderMatrix(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for r, row := range rows {
		for i, cell := range row {
			padded := fmt.Sprintf("%-*s", widths[i], cell)
			switch {
			case r == 0:
				b.WriteString(styleHeader.Render(padded))
			case i == 0:
				b.WriteString(styleValue.Render(padded))
			default:
				b.WriteString(styleCell(cell).Render(padded))
			}
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
