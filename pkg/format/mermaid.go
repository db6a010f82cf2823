package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/flowsheet-tools/flowconn/pkg/graph"
)

// mermaidIndent is the indentation of body lines under the flowchart
// header.
const mermaidIndent = "    "

// Mermaid renders the connectivity graph as a Mermaid flowchart
// (https://mermaid.js.org).
//
// Units become rectangular nodes, boundary streams become stadium-shaped
// nodes so unconnected feeds and outlets stay visible, and each stream
// becomes one edge. With StreamLabels the edge carries the stream's
// display name via the |label| syntax; annotations add further label
// lines.
type Mermaid struct {
	Opts Options
}

// Format emits the flowchart text with a trailing newline.
func (m Mermaid) Format(g *graph.Graph) (string, error) {
	aliases := AssignAliases(g)
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "flowchart %s\n", m.Opts.direction())

	for _, u := range g.Units() {
		parts := append([]string{unitLabel(u, m.Opts)}, annotationLines(m.Opts, u.ID)...)
		fmt.Fprintf(&buf, "%s%s[\"%s\"]\n", mermaidIndent, aliases.Unit(u.ID), m.label(parts))
	}

	// Boundary streams appear as their own stadium nodes.
	for _, s := range g.Streams() {
		if !s.FromBoundary() && !s.ToBoundary() {
			continue
		}
		label := escapeMermaid(s.Label(), m.Opts, "stream label")
		fmt.Fprintf(&buf, "%s%s([\"%s\"])\n", mermaidIndent, aliases.Stream(s.ID), label)
	}

	for _, s := range g.Streams() {
		m.writeEdge(&buf, g, aliases, s)
	}

	return buf.String(), nil
}

func (m Mermaid) writeEdge(buf *bytes.Buffer, g *graph.Graph, aliases Aliases, s graph.Stream) {
	switch {
	case s.FromBoundary():
		fmt.Fprintf(buf, "%s%s --> %s\n", mermaidIndent, aliases.Stream(s.ID), aliases.Unit(s.Dest))
	case s.ToBoundary():
		fmt.Fprintf(buf, "%s%s --> %s\n", mermaidIndent, aliases.Unit(s.Source), aliases.Stream(s.ID))
	default:
		if s.SelfLoop() {
			m.Opts.warn(fmt.Sprintf("stream %q is a self-loop on unit %q", s.ID, s.Source))
		}
		src, dst := aliases.Unit(s.Source), aliases.Unit(s.Dest)
		if label := m.edgeLabel(s); label != "" {
			fmt.Fprintf(buf, "%s%s -->|%s| %s\n", mermaidIndent, src, label, dst)
		} else {
			fmt.Fprintf(buf, "%s%s --> %s\n", mermaidIndent, src, dst)
		}
	}
}

// edgeLabel assembles the optional edge label: the cleaned stream name
// when StreamLabels is on, followed by annotation lines.
func (m Mermaid) edgeLabel(s graph.Stream) string {
	var parts []string
	if m.Opts.StreamLabels {
		parts = append(parts, cleanStreamLabel(s.Label()))
	}
	parts = append(parts, annotationLines(m.Opts, s.ID)...)
	if len(parts) == 0 {
		return ""
	}
	return m.label(parts)
}

// label escapes each label line and joins them with Mermaid's <br/> line
// break.
func (m Mermaid) label(parts []string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = escapeMermaid(p, m.Opts, "label")
	}
	return strings.Join(escaped, "<br/>")
}

// cleanStreamLabel tidies a stream name for display on an edge: common
// "_outlet"/"_feed" suffixes are dropped and underscores become spaces.
func cleanStreamLabel(label string) string {
	label = strings.TrimSuffix(label, "_outlet")
	label = strings.TrimSuffix(label, "_feed")
	return strings.ReplaceAll(label, "_", " ")
}
