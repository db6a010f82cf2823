// Package format renders a connectivity graph into textual output
// formats: a CSV sign matrix, Mermaid flowchart syntax, and D2 diagram
// syntax.
//
// All formatters share the graph's unit and stream iteration order and
// the alias assignment from [AssignAliases], so output for an unchanged
// graph is byte-stable across runs.
package format

import (
	"os"
	"strings"

	"github.com/flowsheet-tools/flowconn/pkg/errors"
	"github.com/flowsheet-tools/flowconn/pkg/graph"
)

// Direction is the flow direction of a diagram.
type Direction string

// Diagram directions. Mermaid uses the values verbatim; D2 maps them to
// right/down/up/left.
const (
	DirLR Direction = "LR" // left to right (default)
	DirTD Direction = "TD" // top down
	DirBT Direction = "BT" // bottom up
	DirRL Direction = "RL" // right to left
)

// ParseDirection parses a direction string, case-insensitively.
// "TB" is accepted as an alias for top-down.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(s) {
	case "LR", "":
		return DirLR, nil
	case "TD", "TB":
		return DirTD, nil
	case "BT":
		return DirBT, nil
	case "RL":
		return DirRL, nil
	}
	return "", errors.New(errors.ErrCodeInvalidDirection, "direction %q not recognized (LR, TD, BT, RL)", s)
}

// Options configures diagram rendering. The zero value renders
// left-to-right with plain labels and no annotations.
type Options struct {
	// Direction of diagram flow; empty means left-to-right.
	Direction Direction

	// StreamLabels adds the stream display name to each edge.
	StreamLabels bool

	// UnitClass appends "::Kind" to unit labels when the kind is known.
	UnitClass bool

	// Annotations, when non-nil, contributes extra label lines for
	// annotated units and streams.
	Annotations *graph.AnnotationStore

	// OnWarning receives non-fatal findings: labels that needed
	// substitution to stay grammar-safe, and self-loop edges. May be nil.
	OnWarning func(msg string)
}

func (o Options) warn(msg string) {
	if o.OnWarning != nil {
		o.OnWarning(msg)
	}
}

func (o Options) direction() Direction {
	if o.Direction == "" {
		return DirLR
	}
	return o.Direction
}

// Formatter renders a connectivity graph into one textual grammar.
// Implementations are pure: same graph, same options, same bytes.
type Formatter interface {
	Format(g *graph.Graph) (string, error)
}

// Output delivers formatted text to its write target: a path creates or
// overwrites that file; an empty path returns the text instead. The text
// is returned in both cases so callers can log or reuse it.
//
// Filesystem errors propagate unchanged inside an IO_ERROR; there are no
// retries, these are local writes.
func Output(text, path string) (string, error) {
	if path == "" {
		return text, nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return text, nil
}

// unitLabel builds the base display label for a unit, honoring the
// UnitClass option.
func unitLabel(u graph.Unit, opts Options) string {
	label := u.Label()
	if opts.UnitClass && u.Kind != "" {
		label += "::" + u.Kind
	}
	return label
}

// annotationLines returns "key = value" lines for a component's
// annotations, in insertion order.
func annotationLines(opts Options, id string) []string {
	if opts.Annotations == nil {
		return nil
	}
	anns := opts.Annotations.Get(id)
	if len(anns) == 0 {
		return nil
	}
	lines := make([]string, len(anns))
	for i, a := range anns {
		lines[i] = a.Key + " = " + a.Value
	}
	return lines
}
