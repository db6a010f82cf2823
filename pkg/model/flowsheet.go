package model

import (
	"strings"

	"github.com/flowsheet-tools/flowconn/pkg/errors"
)

// Flowsheet is an in-memory flowsheet model implementing [Model] and
// [UnitLister]. It is the backing store for the TOML, YAML, and matrix
// adapters and a convenient fixture builder for tests.
//
// Units and arcs keep declaration order. Flowsheet is not safe for
// concurrent mutation; once handed to the extractor it is read-only.
type Flowsheet struct {
	root   *component
	units  []*component
	arcs   []Arc
	byName map[string]*component
}

// NewFlowsheet creates an empty flowsheet with the given root name
// (e.g. "fs"). All component paths are prefixed with this name.
func NewFlowsheet(name string) *Flowsheet {
	return &Flowsheet{
		root:   &component{name: name},
		byName: make(map[string]*component),
	}
}

// AddUnit declares a process unit. Kind is a free-form category and may
// be empty. Redeclaring a name is an error.
func (f *Flowsheet) AddUnit(name, kind string) error {
	if err := errors.ValidateComponentName(name); err != nil {
		return err
	}
	if _, ok := f.byName[name]; ok {
		return errors.New(errors.ErrCodeDuplicateKey, "unit %q declared twice", name)
	}
	u := &component{name: name, parent: f.root, unit: true, kind: kind}
	f.byName[name] = u
	f.units = append(f.units, u)
	return nil
}

// AddArc declares a directed arc. Endpoints are "unit" or "unit.port"
// references; an empty endpoint means the flowsheet boundary. Referencing
// an undeclared unit is an error naming the arc, so a broken definition
// is caught at load time rather than mid-extraction.
func (f *Flowsheet) AddArc(name, source, dest string) error {
	if err := errors.ValidateComponentName(name); err != nil {
		return err
	}
	src, err := f.endpoint(name, source)
	if err != nil {
		return err
	}
	dst, err := f.endpoint(name, dest)
	if err != nil {
		return err
	}
	if src == nil && dst == nil {
		return errors.New(errors.ErrCodeInvalidModel,
			"arc %q connects boundary to boundary", name)
	}
	f.arcs = append(f.arcs, &arc{name: name, source: src, dest: dst})
	return nil
}

// endpoint resolves an endpoint reference to a component, creating the
// port component on demand. Ports are owned by their unit, so the
// extractor's ownership walk passes through them.
func (f *Flowsheet) endpoint(arcName, ref string) (Component, error) {
	if ref == "" {
		return nil, nil // boundary
	}
	unitName, portName, _ := strings.Cut(ref, ".")
	unit, ok := f.byName[unitName]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownUnit,
			"arc %q endpoint %q references undeclared unit %q", arcName, ref, unitName)
	}
	if portName == "" {
		return unit, nil
	}
	return &component{name: portName, parent: unit}, nil
}

// Arcs implements [Model].
func (f *Flowsheet) Arcs() []Arc {
	out := make([]Arc, len(f.arcs))
	copy(out, f.arcs)
	return out
}

// Units implements [UnitLister], reporting all declared units in
// declaration order, connected or not.
func (f *Flowsheet) Units() []Component {
	out := make([]Component, len(f.units))
	for i, u := range f.units {
		out[i] = u
	}
	return out
}

// component implements [Component] as a node in the ownership tree.
type component struct {
	name   string
	parent *component
	unit   bool
	kind   string
}

func (c *component) Path() string {
	if c.parent == nil {
		return c.name
	}
	return c.parent.Path() + "." + c.name
}

func (c *component) Parent() Component {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

func (c *component) IsUnit() bool { return c.unit }
func (c *component) Kind() string { return c.kind }

type arc struct {
	name   string
	source Component
	dest   Component
}

func (a *arc) Name() string      { return a.name }
func (a *arc) Source() Component { return a.source }
func (a *arc) Dest() Component   { return a.dest }
