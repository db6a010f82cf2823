package model

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/flowsheet-tools/flowconn/pkg/errors"
)

// matrixRootName is the root path segment for models loaded from a
// connectivity matrix, which carries no hierarchy of its own.
const matrixRootName = "flowsheet"

// ParseMatrix reads a CSV connectivity matrix and builds a model from
// it. The expected layout is the one the table formatter writes:
//
//	Arcs,unit_1,unit_2,...
//	arc_1,-1,1,...
//	arc_2,0,-1,...
//
// where -1 marks the arc's source unit, 1 its destination unit, and 0 no
// connection. A row without a -1 (or 1) is a boundary feed (or outlet).
// Empty cells count as 0.
func ParseMatrix(r io.Reader) (*Flowsheet, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMatrix, err, "read connectivity matrix")
	}
	if len(records) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidMatrix,
			"connectivity matrix needs a header and at least one arc row")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidMatrix,
			"connectivity matrix header has no unit columns")
	}

	fs := NewFlowsheet(matrixRootName)
	for _, unitName := range header[1:] {
		if err := fs.AddUnit(unitName, ""); err != nil {
			return nil, err
		}
	}

	for rowNum, row := range records[1:] {
		if len(row) != len(header) {
			return nil, errors.New(errors.ErrCodeInvalidMatrix,
				"row %d has %d cells, header has %d", rowNum+2, len(row), len(header))
		}
		arcName := row[0]
		var source, dest string
		for col := 1; col < len(row); col++ {
			v, err := cellValue(row[col])
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidMatrix, err,
					"arc %q, unit %q", arcName, header[col])
			}
			switch v {
			case -1:
				if source != "" {
					return nil, errors.New(errors.ErrCodeInvalidMatrix,
						"arc %q has more than one source unit", arcName)
				}
				source = header[col]
			case 1:
				if dest != "" {
					return nil, errors.New(errors.ErrCodeInvalidMatrix,
						"arc %q has more than one destination unit", arcName)
				}
				dest = header[col]
			}
		}
		if err := fs.AddArc(arcName, source, dest); err != nil {
			return nil, err
		}
	}
	return fs, nil
}

// cellValue parses a single matrix cell into -1, 0, or 1.
// Numeric strings like "1.0" are accepted, matching spreadsheet exports.
func cellValue(cell string) (int, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidMatrix, "cell %q is not numeric", cell)
	}
	v := int(f)
	if v < -1 || v > 1 {
		return 0, errors.New(errors.ErrCodeInvalidMatrix, "cell value %d not in {-1, 0, 1}", v)
	}
	return v, nil
}

// LoadMatrix reads a CSV connectivity matrix from a file.
func LoadMatrix(path string) (*Flowsheet, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ParseMatrix(f)
}

// Load reads a model from any supported file type, dispatching on the
// extension: .csv for a connectivity matrix, .toml / .yaml / .yml for a
// flowsheet definition.
func Load(path string) (*Flowsheet, error) {
	switch {
	case strings.HasSuffix(path, ".csv"):
		return LoadMatrix(path)
	case strings.HasSuffix(path, ".toml"):
		return LoadTOML(path)
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return LoadYAML(path)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported,
			"cannot infer model type from %q (expected .csv, .toml, .yaml)", path)
	}
}
