package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUnitID is returned by [Graph.AddUnit] when the unit ID is
	// empty or equal to the boundary sentinel. All units must have
	// non-empty identifiers distinct from [Boundary].
	ErrInvalidUnitID = errors.New("unit ID must not be empty or the boundary sentinel")

	// ErrDuplicateUnitID is returned by [Graph.AddUnit] when a unit with
	// the same ID already exists in the graph. Unit IDs must be unique.
	ErrDuplicateUnitID = errors.New("duplicate unit ID")

	// ErrInvalidStreamID is returned by [Graph.AddStream] when the stream
	// ID is empty.
	ErrInvalidStreamID = errors.New("stream ID must not be empty")

	// ErrDuplicateStreamID is returned by [Graph.AddStream] when a stream
	// with the same ID already exists in the graph.
	ErrDuplicateStreamID = errors.New("duplicate stream ID")

	// ErrUnknownSourceUnit is returned by [Graph.AddStream] when the
	// Source references a unit that has not been added and is not the
	// boundary sentinel. Dangling endpoints indicate an extraction bug.
	ErrUnknownSourceUnit = errors.New("unknown source unit")

	// ErrUnknownDestUnit is returned by [Graph.AddStream] when the Dest
	// references a unit that has not been added and is not the boundary
	// sentinel.
	ErrUnknownDestUnit = errors.New("unknown destination unit")

	// ErrDetachedStream is returned by [Graph.AddStream] when both
	// endpoints are the boundary sentinel. A stream must touch at least
	// one unit.
	ErrDetachedStream = errors.New("stream connects boundary to boundary")
)

// Boundary is the sentinel endpoint ID used when a stream connects to the
// flowsheet boundary (an unconnected feed or outlet) rather than another
// unit. It never collides with real unit IDs, which are hierarchical
// flowsheet paths.
const Boundary = "__boundary__"

// Unit is a process component discovered during extraction.
//
// ID is the stable internal key derived from the model's hierarchical
// path. DisplayName is resolved separately and may differ from ID; display
// names are not required to be unique. Kind is a free-form category (for
// example the unit's model class) used for diagram labeling.
type Unit struct {
	ID          string
	DisplayName string
	Kind        string
}

// Label returns the display name if set, otherwise the ID.
func (u Unit) Label() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.ID
}

// Stream is a directed connection between two units, or between a unit
// and the flowsheet boundary. Source and Dest hold unit IDs or [Boundary].
type Stream struct {
	ID          string
	DisplayName string
	Source      string
	Dest        string
}

// Label returns the display name if set, otherwise the ID.
func (s Stream) Label() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.ID
}

// SelfLoop reports whether the stream connects a unit to itself.
// Self-loops are legal but rendered specially by the formatters.
func (s Stream) SelfLoop() bool {
	return s.Source == s.Dest && s.Source != Boundary
}

// FromBoundary reports whether the stream is an unconnected feed.
func (s Stream) FromBoundary() bool { return s.Source == Boundary }

// ToBoundary reports whether the stream is an unconnected outlet.
func (s Stream) ToBoundary() bool { return s.Dest == Boundary }

// Graph is the canonical in-memory representation of flowsheet
// connectivity: an ordered sequence of units and an ordered sequence of
// directed streams between them.
//
// Unit and stream order is insertion order, never sorted. The order is
// semantically visible in every output format (matrix columns, diagram
// node declarations, alias assignment) and must be stable across repeated
// extraction of the same model.
//
// The zero value is not usable - use New. Graph is not safe for
// concurrent mutation without external synchronization; once built it is
// treated as immutable by all formatters.
type Graph struct {
	units     []Unit
	streams   []Stream
	unitIdx   map[string]int
	streamIdx map[string]int
}

// New creates an empty connectivity graph.
func New() *Graph {
	return &Graph{
		unitIdx:   make(map[string]int),
		streamIdx: make(map[string]int),
	}
}

// AddUnit appends a unit to the graph, preserving insertion order.
// Returns ErrInvalidUnitID for empty or sentinel IDs and
// ErrDuplicateUnitID when the ID is already present.
func (g *Graph) AddUnit(u Unit) error {
	if u.ID == "" || u.ID == Boundary {
		return fmt.Errorf("add unit: %w", ErrInvalidUnitID)
	}
	if _, ok := g.unitIdx[u.ID]; ok {
		return fmt.Errorf("add unit %q: %w", u.ID, ErrDuplicateUnitID)
	}
	g.unitIdx[u.ID] = len(g.units)
	g.units = append(g.units, u)
	return nil
}

// AddStream appends a stream to the graph, preserving insertion order.
// Both endpoints must reference known units or be [Boundary]; a stream
// with two boundary endpoints is rejected.
func (g *Graph) AddStream(s Stream) error {
	if s.ID == "" {
		return fmt.Errorf("add stream: %w", ErrInvalidStreamID)
	}
	if _, ok := g.streamIdx[s.ID]; ok {
		return fmt.Errorf("add stream %q: %w", s.ID, ErrDuplicateStreamID)
	}
	if s.Source != Boundary {
		if _, ok := g.unitIdx[s.Source]; !ok {
			return fmt.Errorf("stream %q source %q: %w", s.ID, s.Source, ErrUnknownSourceUnit)
		}
	}
	if s.Dest != Boundary {
		if _, ok := g.unitIdx[s.Dest]; !ok {
			return fmt.Errorf("stream %q dest %q: %w", s.ID, s.Dest, ErrUnknownDestUnit)
		}
	}
	if s.Source == Boundary && s.Dest == Boundary {
		return fmt.Errorf("stream %q: %w", s.ID, ErrDetachedStream)
	}
	g.streamIdx[s.ID] = len(g.streams)
	g.streams = append(g.streams, s)
	return nil
}

// Units returns the units in insertion order.
// The returned slice is a copy and can be safely modified.
func (g *Graph) Units() []Unit {
	out := make([]Unit, len(g.units))
	copy(out, g.units)
	return out
}

// Streams returns the streams in insertion order.
// The returned slice is a copy and can be safely modified.
func (g *Graph) Streams() []Stream {
	out := make([]Stream, len(g.streams))
	copy(out, g.streams)
	return out
}

// Unit looks up a unit by ID.
func (g *Graph) Unit(id string) (Unit, bool) {
	i, ok := g.unitIdx[id]
	if !ok {
		return Unit{}, false
	}
	return g.units[i], true
}

// Stream looks up a stream by ID.
func (g *Graph) Stream(id string) (Stream, bool) {
	i, ok := g.streamIdx[id]
	if !ok {
		return Stream{}, false
	}
	return g.streams[i], true
}

// UnitIndex returns the insertion position of a unit, or -1 if unknown.
// Positions are what the table formatter uses for column order and the
// diagram formatters use for alias assignment.
func (g *Graph) UnitIndex(id string) int {
	i, ok := g.unitIdx[id]
	if !ok {
		return -1
	}
	return i
}

// NumUnits returns the number of units in the graph.
func (g *Graph) NumUnits() int { return len(g.units) }

// NumStreams returns the number of streams in the graph.
func (g *Graph) NumStreams() int { return len(g.streams) }

// Validate checks structural invariants: unique IDs and resolvable stream
// endpoints. AddUnit/AddStream maintain these incrementally, so Validate
// only fails for graphs assembled through unexported fields (i.e. bugs).
func (g *Graph) Validate() error {
	seen := make(map[string]bool, len(g.units))
	for _, u := range g.units {
		if u.ID == "" || u.ID == Boundary {
			return fmt.Errorf("unit %q: %w", u.ID, ErrInvalidUnitID)
		}
		if seen[u.ID] {
			return fmt.Errorf("unit %q: %w", u.ID, ErrDuplicateUnitID)
		}
		seen[u.ID] = true
	}
	seenStreams := make(map[string]bool, len(g.streams))
	for _, s := range g.streams {
		if seenStreams[s.ID] {
			return fmt.Errorf("stream %q: %w", s.ID, ErrDuplicateStreamID)
		}
		seenStreams[s.ID] = true
		if s.Source != Boundary && !seen[s.Source] {
			return fmt.Errorf("stream %q source %q: %w", s.ID, s.Source, ErrUnknownSourceUnit)
		}
		if s.Dest != Boundary && !seen[s.Dest] {
			return fmt.Errorf("stream %q dest %q: %w", s.ID, s.Dest, ErrUnknownDestUnit)
		}
	}
	return nil
}
