package model

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flowsheet-tools/flowconn/pkg/errors"
)

// ParseYAML decodes a YAML flowsheet definition and builds the model.
// The YAML form mirrors the TOML one with plural list keys:
//
//	name: fs
//	units:
//	  - name: pump_01
//	    kind: Pump
//	arcs:
//	  - name: feed_to_p1
//	    source: feed.outlet
//	    dest: pump_01.inlet
func ParseYAML(r io.Reader) (*Flowsheet, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "parse YAML flowsheet definition")
	}
	return def.Flowsheet()
}

// LoadYAML reads a YAML flowsheet definition from a file.
func LoadYAML(path string) (*Flowsheet, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ParseYAML(f)
}
