package model

import (
	"github.com/go-playground/validator/v10"

	"github.com/flowsheet-tools/flowconn/pkg/errors"
)

// Definition is the decoded form of a flowsheet definition file. The same
// struct backs both the TOML and YAML adapters; only the decoder differs.
//
// TOML form:
//
//	name = "fs"
//
//	[[unit]]
//	name = "pump_01"
//	kind = "Pump"
//
//	[[arc]]
//	name = "feed_to_p1"
//	source = "feed.outlet"
//	dest = "pump_01.inlet"
//
// An omitted arc source or dest means the flowsheet boundary.
type Definition struct {
	Name  string    `toml:"name" yaml:"name" validate:"required"`
	Units []UnitDef `toml:"unit" yaml:"units" validate:"required,min=1,dive"`
	Arcs  []ArcDef  `toml:"arc" yaml:"arcs" validate:"dive"`
}

// UnitDef declares a process unit in a definition file.
type UnitDef struct {
	Name string `toml:"name" yaml:"name" validate:"required,max=256"`
	Kind string `toml:"kind" yaml:"kind" validate:"max=256"`
}

// ArcDef declares a directed arc in a definition file.
type ArcDef struct {
	Name   string `toml:"name" yaml:"name" validate:"required,max=256"`
	Source string `toml:"source" yaml:"source"`
	Dest   string `toml:"dest" yaml:"dest"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Flowsheet validates the definition and builds the in-memory model.
// Units and arcs keep file declaration order.
func (d *Definition) Flowsheet() (*Flowsheet, error) {
	if err := validate.Struct(d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "invalid flowsheet definition")
	}
	fs := NewFlowsheet(d.Name)
	for _, u := range d.Units {
		if err := fs.AddUnit(u.Name, u.Kind); err != nil {
			return nil, err
		}
	}
	for _, a := range d.Arcs {
		if err := fs.AddArc(a.Name, a.Source, a.Dest); err != nil {
			return nil, err
		}
	}
	return fs, nil
}
