package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/flowsheet-tools/flowconn/pkg/graph"
)

// d2Directions maps diagram directions onto the D2 direction keywords.
var d2Directions = map[Direction]string{
	DirLR: "right",
	DirTD: "down",
	DirBT: "up",
	DirRL: "left",
}

// D2 renders the connectivity graph in D2 syntax (https://d2lang.com).
//
// Units become nodes declared as `ALIAS: "label"`, streams become edges
// declared as `ALIAS1 -> ALIAS2`, with the stream's display name as the
// edge label when StreamLabels is on. Boundary streams get numbered
// feed/sink nodes so they stay visible in the diagram.
type D2 struct {
	Opts Options
}

// Format emits the D2 text with a trailing newline.
func (d D2) Format(g *graph.Graph) (string, error) {
	aliases := AssignAliases(g)
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "direction: %s\n", d2Directions[d.Opts.direction()])

	for _, u := range g.Units() {
		parts := append([]string{unitLabel(u, d.Opts)}, annotationLines(d.Opts, u.ID)...)
		fmt.Fprintf(&buf, "%s: \"%s\"\n", aliases.Unit(u.ID), d.label(parts))
	}

	feedNum, sinkNum := 1, 1
	for _, s := range g.Streams() {
		switch {
		case s.FromBoundary():
			fmt.Fprintf(&buf, "f%d: \"Feed %d\"\n", feedNum, feedNum)
			d.writeEdge(&buf, s, fmt.Sprintf("f%d", feedNum), aliases.Unit(s.Dest))
			feedNum++
		case s.ToBoundary():
			fmt.Fprintf(&buf, "s%d: \"Sink %d\"\n", sinkNum, sinkNum)
			d.writeEdge(&buf, s, aliases.Unit(s.Source), fmt.Sprintf("s%d", sinkNum))
			sinkNum++
		default:
			if s.SelfLoop() {
				d.Opts.warn(fmt.Sprintf("stream %q is a self-loop on unit %q", s.ID, s.Source))
			}
			d.writeEdge(&buf, s, aliases.Unit(s.Source), aliases.Unit(s.Dest))
		}
	}

	return buf.String(), nil
}

func (d D2) writeEdge(buf *bytes.Buffer, s graph.Stream, from, to string) {
	var parts []string
	if d.Opts.StreamLabels {
		parts = append(parts, s.Label())
	}
	parts = append(parts, annotationLines(d.Opts, s.ID)...)
	if len(parts) == 0 {
		fmt.Fprintf(buf, "%s -> %s\n", from, to)
		return
	}
	fmt.Fprintf(buf, "%s -> %s: \"%s\"\n", from, to, d.label(parts))
}

// label joins label lines into a single quoted D2 label, using the \n
// escape sequence for line breaks.
func (d D2) label(parts []string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = escapeD2(p, d.Opts, "label")
	}
	return strings.Join(escaped, `\n`)
}
