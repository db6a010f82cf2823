package extract

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/flowsheet-tools/flowconn/pkg/model"
)

// arcSpec is a generated arc: indices into a generated unit list, with -1
// meaning the flowsheet boundary on that end.
type arcSpec struct {
	Src int
	Dst int
}

// buildRandomModel turns generated unit count and arc specs into a
// flowsheet. Arcs whose ends are both boundary are skipped, since the
// model layer rejects them.
func buildRandomModel(numUnits int, specs []arcSpec) *model.Flowsheet {
	fs := model.NewFlowsheet("fs")
	for i := 0; i < numUnits; i++ {
		fs.AddUnit(fmt.Sprintf("unit_%02d", i), "")
	}
	ref := func(idx int) string {
		if idx < 0 {
			return ""
		}
		return fmt.Sprintf("unit_%02d", idx%numUnits)
	}
	for i, s := range specs {
		if s.Src < 0 && s.Dst < 0 {
			continue
		}
		fs.AddArc(fmt.Sprintf("arc_%03d", i), ref(s.Src), ref(s.Dst))
	}
	return fs
}

func genArcSpecs(maxUnits int) gopter.Gen {
	return gen.SliceOf(gopter.CombineGens(
		gen.IntRange(-1, maxUnits-1),
		gen.IntRange(-1, maxUnits-1),
	).Map(func(vs []interface{}) arcSpec {
		return arcSpec{Src: vs[0].(int), Dst: vs[1].(int)}
	}))
}

// TestExtractionProperties checks invariants that must hold for any
// model, however its arcs are wired.
func TestExtractionProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	const maxUnits = 8

	properties.Property("stream order follows arc declaration order", prop.ForAll(
		func(specs []arcSpec) bool {
			fs := buildRandomModel(maxUnits, specs)
			res, err := Extract(fs, Options{})
			if err != nil {
				return false
			}
			wantArcs := fs.Arcs()
			streams := res.Graph.Streams()
			if len(streams) != len(wantArcs) {
				return false
			}
			for i, s := range streams {
				if s.ID != wantArcs[i].Name() {
					return false
				}
			}
			return true
		},
		genArcSpecs(maxUnits),
	))

	properties.Property("every stream endpoint is a known unit or the boundary", prop.ForAll(
		func(specs []arcSpec) bool {
			fs := buildRandomModel(maxUnits, specs)
			res, err := Extract(fs, Options{})
			if err != nil {
				return false
			}
			return res.Graph.Validate() == nil
		},
		genArcSpecs(maxUnits),
	))

	properties.Property("extraction is deterministic", prop.ForAll(
		func(specs []arcSpec) bool {
			fs := buildRandomModel(maxUnits, specs)
			a, err := Extract(fs, Options{})
			if err != nil {
				return false
			}
			b, err := Extract(fs, Options{})
			if err != nil {
				return false
			}
			au, bu := a.Graph.Units(), b.Graph.Units()
			if len(au) != len(bu) {
				return false
			}
			for i := range au {
				if au[i] != bu[i] {
					return false
				}
			}
			as, bs := a.Graph.Streams(), b.Graph.Streams()
			for i := range as {
				if as[i] != bs[i] {
					return false
				}
			}
			return true
		},
		genArcSpecs(maxUnits),
	))

	properties.TestingRun(t)
}
