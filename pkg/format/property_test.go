package format

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/flowsheet-tools/flowconn/pkg/graph"
)

// edgeSpec is a generated stream: unit indices with -1 meaning the
// boundary on that end.
type edgeSpec struct {
	Src int
	Dst int
}

func buildRandomGraph(numUnits int, specs []edgeSpec) *graph.Graph {
	g := graph.New()
	for i := 0; i < numUnits; i++ {
		g.AddUnit(graph.Unit{ID: fmt.Sprintf("u%02d", i)})
	}
	ref := func(idx int) string {
		if idx < 0 {
			return graph.Boundary
		}
		return fmt.Sprintf("u%02d", idx%numUnits)
	}
	for i, s := range specs {
		if s.Src < 0 && s.Dst < 0 {
			continue
		}
		g.AddStream(graph.Stream{
			ID:     fmt.Sprintf("e%03d", i),
			Source: ref(s.Src),
			Dest:   ref(s.Dst),
		})
	}
	return g
}

func genEdgeSpecs(maxUnits int) gopter.Gen {
	return gen.SliceOf(gopter.CombineGens(
		gen.IntRange(-1, maxUnits-1),
		gen.IntRange(-1, maxUnits-1),
	).Map(func(vs []interface{}) edgeSpec {
		return edgeSpec{Src: vs[0].(int), Dst: vs[1].(int)}
	}))
}

func countSigns(row []string) (neg, pos int) {
	for _, cell := range row[1:] {
		switch cell {
		case "-1":
			neg++
		case "1":
			pos++
		}
	}
	return neg, pos
}

// TestTableProperties checks the sign-matrix invariants for arbitrary
// graphs, including boundary streams and self-loops.
func TestTableProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	const maxUnits = 8

	properties.Property("each row carries at most one -1 and one 1, matching its endpoints", prop.ForAll(
		func(specs []edgeSpec) bool {
			g := buildRandomGraph(maxUnits, specs)
			rows := Table{}.Rows(g)
			streams := g.Streams()
			if len(rows) != len(streams)+1 {
				return false
			}
			for i, s := range streams {
				neg, pos := countSigns(rows[i+1])
				switch {
				case s.SelfLoop():
					if neg != 0 || pos != 0 {
						return false
					}
				default:
					wantNeg, wantPos := 0, 0
					if !s.FromBoundary() {
						wantNeg = 1
					}
					if !s.ToBoundary() {
						wantPos = 1
					}
					if neg != wantNeg || pos != wantPos {
						return false
					}
				}
			}
			return true
		},
		genEdgeSpecs(maxUnits),
	))

	properties.Property("formatting twice yields identical bytes", prop.ForAll(
		func(specs []edgeSpec) bool {
			g := buildRandomGraph(maxUnits, specs)
			for _, f := range []Formatter{Table{}, Mermaid{}, D2{}} {
				a, err := f.Format(g)
				if err != nil {
					return false
				}
				b, err := f.Format(g)
				if err != nil {
					return false
				}
				if a != b {
					return false
				}
			}
			return true
		},
		genEdgeSpecs(maxUnits),
	))

	properties.TestingRun(t)
}
