package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/flowsheet-tools/flowconn/pkg/errors"
)

// Config holds user defaults loaded from the config file. Command-line
// flags always win over config values.
//
// Example ~/.config/flowconn/config.toml:
//
//	format = "mermaid"
//	direction = "TD"
//	labels = true
type Config struct {
	// Format is the default output format for extract (csv, mermaid, d2).
	Format string `toml:"format"`

	// Direction is the default diagram direction (LR, TD, BT, RL).
	Direction string `toml:"direction"`

	// Labels adds stream labels to diagram edges by default.
	Labels bool `toml:"labels"`

	// UnitClass appends unit kinds to diagram labels by default.
	UnitClass bool `toml:"unit_class"`
}

// DefaultConfig returns the built-in defaults: CSV output, left-to-right
// diagrams, no labels.
func DefaultConfig() Config {
	return Config{
		Format:    "csv",
		Direction: "LR",
	}
}

// LoadConfig reads the config file at path, layering it over the
// defaults. A missing file (or empty path) is not an error - the
// defaults apply unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}
