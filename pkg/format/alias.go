package format

import (
	"fmt"

	"github.com/flowsheet-tools/flowconn/pkg/graph"
)

// Aliases holds the short synthetic identifiers the diagram formatters
// use in place of display names. Aliases never collide even when display
// names do, and assignment depends only on graph order, so a byte-stable
// graph yields byte-stable diagrams.
//
// The scheme matches the CSV matrix opened in a spreadsheet: unit aliases
// carry column letters starting at B (column A holds the arc names) and
// stream aliases carry row numbers starting at 3.
type Aliases struct {
	units   map[string]string
	streams map[string]string
}

// AssignAliases computes aliases for every unit and stream in the graph,
// in graph iteration order.
func AssignAliases(g *graph.Graph) Aliases {
	a := Aliases{
		units:   make(map[string]string, g.NumUnits()),
		streams: make(map[string]string, g.NumStreams()),
	}
	for i, u := range g.Units() {
		a.units[u.ID] = "Unit_" + columnLetters(i)
	}
	for i, s := range g.Streams() {
		a.streams[s.ID] = fmt.Sprintf("Stream_%d", i+3)
	}
	return a
}

// Unit returns the alias for a unit ID, or "" if unknown.
func (a Aliases) Unit(id string) string { return a.units[id] }

// Stream returns the alias for a stream ID, or "" if unknown.
func (a Aliases) Stream(id string) string { return a.streams[id] }

// columnLetters maps a 0-based unit position to spreadsheet column
// letters: B..Z, then AA..AZ, BA.. and so on.
func columnLetters(i int) string {
	if i < 25 {
		return string(rune('B' + i))
	}
	j := i - 25
	return string(rune('A'+j/26)) + string(rune('A'+j%26))
}
