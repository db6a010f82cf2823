// Package extract walks a flowsheet model's declared arcs and produces an
// order-stable connectivity graph.
//
// Arc declaration order is the sole source of stream order; units enter
// the graph the first time they are seen as a source or destination, in
// that discovery order. Re-extracting an unchanged model therefore yields
// byte-identical unit and stream sequences, which every formatter relies
// on for diff-friendly output.
package extract

import (
	stderrors "errors"
	"fmt"

	"github.com/flowsheet-tools/flowconn/pkg/errors"
	"github.com/flowsheet-tools/flowconn/pkg/graph"
	"github.com/flowsheet-tools/flowconn/pkg/model"
)

// maxWalkDepth bounds the endpoint ownership walk. A deeper hierarchy
// indicates a cyclic Parent chain in the model adapter.
const maxWalkDepth = 1000

// Options configures an extraction run.
type Options struct {
	// Overrides maps internal keys (unit paths, arc names) to display
	// names, taking precedence over the default derivation. Keys absent
	// from the model are ignored.
	Overrides map[string]string

	// IncludeIsolated appends units declared by the model but touched by
	// no arc, when the model supports listing them (see
	// [model.UnitLister]). They are appended after all arc-discovered
	// units so default output is unaffected.
	IncludeIsolated bool
}

// Result is the outcome of an extraction: the graph plus non-fatal
// findings (display-name collisions, self-loops) the caller may want to
// surface.
type Result struct {
	Graph    *graph.Graph
	Warnings []string
}

// Extract walks the model's declared connections and assembles the
// connectivity graph. The model is never mutated; each call returns a
// freshly owned graph, so concurrent extraction of independent models is
// safe.
//
// Fatal conditions: an arc endpoint that cannot be resolved to a unit or
// the boundary (EXTRACTION_FAILED) and two arcs producing the same stream
// key (DUPLICATE_KEY). Both carry the offending arc's name.
func Extract(m model.Model, opts Options) (*Result, error) {
	g := graph.New()
	resolver := NewNameResolver(opts.Overrides)
	var warnings []string

	for _, arc := range m.Arcs() {
		name := arc.Name()

		srcID, srcUnit, err := owningUnit(name, "source", arc.Source())
		if err != nil {
			return nil, err
		}
		dstID, dstUnit, err := owningUnit(name, "dest", arc.Dest())
		if err != nil {
			return nil, err
		}

		for _, u := range []struct {
			id   string
			comp model.Component
		}{{srcID, srcUnit}, {dstID, dstUnit}} {
			if u.id == graph.Boundary {
				continue
			}
			if _, seen := g.Unit(u.id); seen {
				continue
			}
			if err := addUnit(g, resolver, u.id, u.comp.Kind()); err != nil {
				return nil, err
			}
		}

		stream := graph.Stream{
			ID:          name,
			DisplayName: resolver.Resolve(name, RoleStream),
			Source:      srcID,
			Dest:        dstID,
		}
		if err := g.AddStream(stream); err != nil {
			if stderrors.Is(err, graph.ErrDuplicateStreamID) {
				return nil, errors.Wrap(errors.ErrCodeDuplicateKey, err,
					"arc %q declared more than once", name)
			}
			return nil, errors.Wrap(errors.ErrCodeExtraction, err, "arc %q", name)
		}
		if stream.SelfLoop() {
			warnings = append(warnings,
				fmt.Sprintf("arc %q connects unit %q to itself", name, srcID))
		}
	}

	if opts.IncludeIsolated {
		if lister, ok := m.(model.UnitLister); ok {
			for _, c := range lister.Units() {
				if _, seen := g.Unit(c.Path()); seen {
					continue
				}
				if err := addUnit(g, resolver, c.Path(), c.Kind()); err != nil {
					return nil, err
				}
			}
		}
	}

	warnings = append(warnings, nameCollisions(g)...)
	return &Result{Graph: g, Warnings: warnings}, nil
}

func addUnit(g *graph.Graph, resolver *NameResolver, id, kind string) error {
	u := graph.Unit{
		ID:          id,
		DisplayName: resolver.Resolve(id, RoleUnit),
		Kind:        kind,
	}
	if err := g.AddUnit(u); err != nil {
		if stderrors.Is(err, graph.ErrDuplicateUnitID) {
			return errors.Wrap(errors.ErrCodeDuplicateKey, err,
				"two units share the key %q", id)
		}
		return errors.Wrap(errors.ErrCodeExtraction, err, "unit %q", id)
	}
	return nil
}

// owningUnit resolves an arc endpoint to its owning unit's key by walking
// up the model's ownership hierarchy. A nil endpoint, or a walk that
// reaches the flowsheet root without finding a unit, resolves to the
// boundary sentinel.
func owningUnit(arcName, end string, ep model.Component) (string, model.Component, error) {
	if ep == nil {
		return graph.Boundary, nil, nil
	}
	c := ep
	for depth := 0; c != nil; depth++ {
		if depth > maxWalkDepth {
			return "", nil, errors.New(errors.ErrCodeExtraction,
				"arc %q %s endpoint %q: ownership walk exceeded depth %d (cyclic hierarchy?)",
				arcName, end, ep.Path(), maxWalkDepth)
		}
		if c.IsUnit() {
			return c.Path(), c, nil
		}
		c = c.Parent()
	}
	return graph.Boundary, nil, nil
}

// nameCollisions reports units whose resolved display names collide.
// Collisions are legal (IDs stay unique) but worth surfacing: in diagram
// output two distinct nodes will carry the same label.
func nameCollisions(g *graph.Graph) []string {
	byName := make(map[string]string)
	var warnings []string
	for _, u := range g.Units() {
		if prev, ok := byName[u.DisplayName]; ok {
			warnings = append(warnings, fmt.Sprintf(
				"units %q and %q share the display name %q", prev, u.ID, u.DisplayName))
			continue
		}
		byName[u.DisplayName] = u.ID
	}
	return warnings
}
