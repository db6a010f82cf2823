// Package model defines the capability interface the connectivity
// extractor requires from a flowsheet model, together with adapters for
// the on-disk formats flowconn can read (TOML and YAML flowsheet
// definitions, CSV connectivity matrices).
//
// The extractor never depends on a concrete model ecosystem: anything
// that can enumerate named directed arcs, resolve arc endpoints, and walk
// an endpoint up to its owning unit can be extracted. The [Flowsheet]
// type in this package is the reference implementation backing all three
// adapters and the test fixtures.
package model

// Component is a named element in a flowsheet's ownership hierarchy: the
// flowsheet root, a process unit, or a sub-component such as a port.
type Component interface {
	// Path returns the hierarchical dotted path from the flowsheet root,
	// including the root's own name (e.g. "fs.pump_01.inlet").
	Path() string

	// Parent returns the enclosing component, or nil at the root.
	Parent() Component

	// IsUnit reports whether the component is a first-class process unit,
	// as opposed to a port or other sub-component container.
	IsUnit() bool

	// Kind returns the unit's free-form category (e.g. its model class),
	// or "" when unknown or not a unit.
	Kind() string
}

// Arc is a named directed connection declared by the model. Endpoints are
// components (typically ports); their owning units are found by walking
// Parent until a component reports IsUnit.
type Arc interface {
	// Name returns the arc's declared name, unique within the model.
	Name() string

	// Source returns the arc's origin endpoint, or nil when the arc
	// enters from the flowsheet boundary.
	Source() Component

	// Dest returns the arc's target endpoint, or nil when the arc leaves
	// through the flowsheet boundary.
	Dest() Component
}

// Model is the minimal capability the extractor consumes. The extractor
// never mutates the model.
type Model interface {
	// Arcs returns the model's declared arcs in declaration order. This
	// order is the sole source of stream order and, transitively, of
	// first-seen unit order in the extracted graph.
	Arcs() []Arc
}

// UnitLister is an optional extension reporting declared units in
// declaration order, including units with no incident arcs. Extraction
// only consults it when isolated units are explicitly requested; by
// default units unreachable through any arc stay out of the graph.
type UnitLister interface {
	Units() []Component
}
