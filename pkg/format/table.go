package format

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/flowsheet-tools/flowconn/pkg/errors"
	"github.com/flowsheet-tools/flowconn/pkg/graph"
)

// Table renders the connectivity graph as a sign matrix with streams as
// rows and units as columns: -1 marks the stream's source unit, 1 its
// destination, 0 no connection.
//
// A self-loop stream nets to zero flow contribution, so its row is all
// zeros; the loop is noted as a "self_loop" annotation on the stream
// (when an annotation store is configured) and via OnWarning, never as
// two conflicting signs in one cell.
type Table struct {
	Opts Options
}

// Header is the literal first column header of the matrix.
const Header = "Arcs"

// Rows builds the matrix structure: a header row ["Arcs", units...] in
// unit order, then one row per stream in stream order. Cells are decimal
// strings so Rows can feed both the CSV writer and terminal display.
func (t Table) Rows(g *graph.Graph) [][]string {
	units := g.Units()
	streams := g.Streams()

	rows := make([][]string, 0, len(streams)+1)
	header := make([]string, len(units)+1)
	header[0] = Header
	for i, u := range units {
		header[i+1] = u.Label()
	}
	rows = append(rows, header)

	for _, s := range streams {
		row := make([]string, len(units)+1)
		row[0] = s.Label()
		for i := range units {
			row[i+1] = "0"
		}
		if s.SelfLoop() {
			t.Opts.warn(fmt.Sprintf("stream %q is a self-loop on unit %q; row left all zeros", s.ID, s.Source))
			if t.Opts.Annotations != nil {
				t.Opts.Annotations.Set(s.ID, "self_loop", "true")
			}
		} else {
			if i := g.UnitIndex(s.Source); i >= 0 {
				row[i+1] = "-1"
			}
			if i := g.UnitIndex(s.Dest); i >= 0 {
				row[i+1] = "1"
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Format serializes the matrix as CSV with a trailing newline. Fields
// containing the separator or quote characters are quoted by the CSV
// writer.
func (t Table) Format(g *graph.Graph) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	for _, row := range t.Rows(g) {
		if err := w.Write(row); err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "write CSV row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "flush CSV")
	}
	return buf.String(), nil
}
