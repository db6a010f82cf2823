package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flowsheet-tools/flowconn/pkg/errors"
	"github.com/flowsheet-tools/flowconn/pkg/graph"
)

// chainGraph builds the three-unit chain fixture: M01 -> H02 -> F03.
func chainGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range []string{"M01", "H02", "F03"} {
		if err := g.AddUnit(graph.Unit{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	streams := []graph.Stream{
		{ID: "s01", Source: "M01", Dest: "H02"},
		{ID: "s02", Source: "H02", Dest: "F03"},
	}
	for _, s := range streams {
		if err := g.AddStream(s); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// boundaryGraph builds a single pump with a boundary feed and a boundary
// product stream.
func boundaryGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	if err := g.AddUnit(graph.Unit{ID: "pump_01", Kind: "Pump"}); err != nil {
		t.Fatal(err)
	}
	streams := []graph.Stream{
		{ID: "feed", Source: graph.Boundary, Dest: "pump_01"},
		{ID: "product", Source: "pump_01", Dest: graph.Boundary},
	}
	for _, s := range streams {
		if err := g.AddStream(s); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"LR", DirLR, false},
		{"lr", DirLR, false},
		{"", DirLR, false},
		{"TD", DirTD, false},
		{"TB", DirTD, false},
		{"tb", DirTD, false},
		{"BT", DirBT, false},
		{"RL", DirRL, false},
		{"sideways", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeInvalidDirection) {
				t.Errorf("ParseDirection(%q) error = %v, want code %s", tt.in, err, errors.ErrCodeInvalidDirection)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDirection(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	text := "Arcs,a\ns01,-1\n"

	got, err := Output(text, path)
	if err != nil {
		t.Fatal(err)
	}
	if got != text {
		t.Errorf("Output returned %q, want the input text", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != text {
		t.Errorf("file contents = %q, want %q", data, text)
	}
}

func TestOutputEmptyPath(t *testing.T) {
	got, err := Output("text", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != "text" {
		t.Errorf("Output = %q, want text", got)
	}
}

func TestOutputWriteError(t *testing.T) {
	_, err := Output("text", filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv"))
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("got %v, want code %s", err, errors.ErrCodeIO)
	}
}

func TestUnitLabel(t *testing.T) {
	u := graph.Unit{ID: "fs.pump_01", DisplayName: "pump_01", Kind: "Pump"}

	if got := unitLabel(u, Options{}); got != "pump_01" {
		t.Errorf("plain label = %q, want pump_01", got)
	}
	if got := unitLabel(u, Options{UnitClass: true}); got != "pump_01::Pump" {
		t.Errorf("class label = %q, want pump_01::Pump", got)
	}

	u.Kind = ""
	if got := unitLabel(u, Options{UnitClass: true}); got != "pump_01" {
		t.Errorf("kindless class label = %q, want pump_01", got)
	}
}

func TestAnnotationLines(t *testing.T) {
	store := graph.NewAnnotationStore()
	store.Set("s01", "duty", "4.2 MW")
	store.Set("s01", "phase", "liquid")

	opts := Options{Annotations: store}
	lines := annotationLines(opts, "s01")
	want := []string{"duty = 4.2 MW", "phase = liquid"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	if got := annotationLines(opts, "nothing"); got != nil {
		t.Errorf("unannotated component lines = %v, want nil", got)
	}
	if got := annotationLines(Options{}, "s01"); got != nil {
		t.Errorf("nil store lines = %v, want nil", got)
	}
}
