package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowsheet-tools/flowconn/pkg/errors"
	"github.com/flowsheet-tools/flowconn/pkg/extract"
	"github.com/flowsheet-tools/flowconn/pkg/format"
	"github.com/flowsheet-tools/flowconn/pkg/model"
)

// console is the output path meaning "print to stdout".
const console = "-"

// Output formats accepted by --to.
const (
	formatCSV     = "csv"
	formatMermaid = "mermaid"
	formatD2      = "d2"
)

// formatExtensions maps output formats to the file extension used when
// no output file is given.
var formatExtensions = map[string]string{
	formatCSV:     "csv",
	formatMermaid: "mmd",
	formatD2:      "d2",
}

// extractOpts holds the command-line flags for the extract command.
type extractOpts struct {
	to              string   // output format: csv, mermaid, d2
	output          string   // output file, "-" for stdout, "" to infer
	labels          bool     // add stream labels to diagram edges
	direction       string   // diagram direction: LR, TD, BT, RL
	unitClass       bool     // append unit kind to diagram labels
	overrides       []string // key=name display overrides
	includeIsolated bool     // include units with no incident arcs
}

// extractCommand creates the extract command: read a model source, walk
// its connectivity, and write the result in the chosen format.
func (c *CLI) extractCommand() *cobra.Command {
	opts := extractOpts{
		to:        c.Config.Format,
		direction: c.Config.Direction,
		labels:    c.Config.Labels,
		unitClass: c.Config.UnitClass,
	}

	cmd := &cobra.Command{
		Use:   "extract [source]",
		Short: "Extract connectivity from a model source and write it out",
		Long: `Extract reads a model source (a .toml or .yaml flowsheet definition, or a
.csv connectivity matrix) and writes its connectivity graph as a CSV
matrix, a Mermaid flowchart, or a D2 diagram.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExtract(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", opts.to, "output format: csv, mermaid, d2")
	cmd.Flags().StringVarP(&opts.output, "output", "O", "", "output file; '-' for stdout (default: source name with format extension)")
	cmd.Flags().BoolVarP(&opts.labels, "labels", "L", opts.labels, "add stream labels to diagram edges")
	cmd.Flags().StringVarP(&opts.direction, "direction", "D", opts.direction, "diagram direction: LR, TD, BT, RL")
	cmd.Flags().BoolVar(&opts.unitClass, "unit-class", opts.unitClass, "append unit kind to diagram labels")
	cmd.Flags().StringArrayVar(&opts.overrides, "override", nil, "display-name override key=name (repeatable)")
	cmd.Flags().BoolVar(&opts.includeIsolated, "include-isolated", false, "include declared units with no incident arcs")

	return cmd
}

func (c *CLI) runExtract(cmd *cobra.Command, source string, opts extractOpts) error {
	logger := loggerFromContext(cmd.Context())

	overrides, err := parseOverrides(opts.overrides)
	if err != nil {
		return err
	}
	formatter, err := newFormatter(opts, func(msg string) { logger.Warn(msg) })
	if err != nil {
		return err
	}

	p := newProgress(logger)
	m, err := model.Load(source)
	if err != nil {
		return err
	}

	res, err := extract.Extract(m, extract.Options{
		Overrides:       overrides,
		IncludeIsolated: opts.includeIsolated,
	})
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		logger.Warn(w)
	}
	p.done(fmt.Sprintf("Extracted %d units, %d streams", res.Graph.NumUnits(), res.Graph.NumStreams()))

	text, err := formatter.Format(res.Graph)
	if err != nil {
		return err
	}

	switch target := outputTarget(source, opts); target {
	case console:
		fmt.Fprint(cmd.OutOrStdout(), text)
	default:
		if _, err := format.Output(text, target); err != nil {
			return err
		}
		logger.Info("Wrote output", "file", target, "format", opts.to)
	}
	return nil
}

// newFormatter builds the formatter for the requested output format.
func newFormatter(opts extractOpts, onWarning func(string)) (format.Formatter, error) {
	switch opts.to {
	case formatCSV:
		return format.Table{Opts: format.Options{OnWarning: onWarning}}, nil
	case formatMermaid, formatD2:
		dir, err := format.ParseDirection(opts.direction)
		if err != nil {
			return nil, err
		}
		fopts := format.Options{
			Direction:    dir,
			StreamLabels: opts.labels,
			UnitClass:    opts.unitClass,
			OnWarning:    onWarning,
		}
		if opts.to == formatMermaid {
			return format.Mermaid{Opts: fopts}, nil
		}
		return format.D2{Opts: fopts}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "output format %q not recognized (csv, mermaid, d2)", opts.to)
}

// outputTarget resolves the write target: an explicit file, stdout, or a
// file derived from the source name and format extension.
func outputTarget(source string, opts extractOpts) string {
	if opts.output != "" {
		return opts.output
	}
	ext := formatExtensions[opts.to]
	if i := strings.LastIndex(source, "."); i > 0 {
		return source[:i] + "." + ext
	}
	return source + "." + ext
}

// parseOverrides turns repeated key=name flags into an override map.
func parseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	overrides := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, name, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "override %q is not key=name", pair)
		}
		if err := errors.ValidateOverrideKey(key); err != nil {
			return nil, err
		}
		overrides[key] = name
	}
	return overrides, nil
}
