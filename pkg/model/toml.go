package model

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/flowsheet-tools/flowconn/pkg/errors"
)

// ParseTOML decodes a TOML flowsheet definition and builds the model.
func ParseTOML(r io.Reader) (*Flowsheet, error) {
	var def Definition
	if _, err := toml.NewDecoder(r).Decode(&def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "parse TOML flowsheet definition")
	}
	return def.Flowsheet()
}

// LoadTOML reads a TOML flowsheet definition from a file.
func LoadTOML(path string) (*Flowsheet, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ParseTOML(f)
}
