package cli

import (
	"strings"
	"testing"
)

func TestShowRendersMatrix(t *testing.T) {
	src := writeSource(t, "chain.toml", tomlSource)

	out, err := runCommand(t, testCLI(), "show", src)
	if err != nil {
		t.Fatal(err)
	}
	// Styling degrades to plain text without a TTY, so the cell values
	// are directly visible.
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	for _, want := range []string{"Arcs", "M01", "H02", "F03"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("header %q missing %q", lines[0], want)
		}
	}
	s01 := strings.Fields(lines[1])
	wantRow := []string{"s01", "-1", "1", "0"}
	if len(s01) != len(wantRow) {
		t.Fatalf("row = %v, want %v", s01, wantRow)
	}
	for i := range wantRow {
		if s01[i] != wantRow[i] {
			t.Errorf("row cell %d = %q, want %q", i, s01[i], wantRow[i])
		}
	}
}

func TestShowSelfLoopWarning(t *testing.T) {
	src := writeSource(t, "loop.toml", `
name = "fs"

[[unit]]
name = "reactor"

[[arc]]
name = "recycle"
source = "reactor.outlet"
dest = "reactor.inlet"
`)

	out, err := runCommand(t, testCLI(), "show", src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "recycle") || !strings.Contains(out, "!") {
		t.Errorf("output missing self-loop warning:\n%s", out)
	}
}

func TestRenderMatrixAlignment(t *testing.T) {
	rows := [][]string{
		{"Arcs", "pump_01", "x"},
		{"s01", "-1", "1"},
	}
	out := renderMatrix(rows)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// Columns pad to the widest cell, so both lines align.
	if len(lines[0]) != len(lines[1]) {
		t.Errorf("line widths differ:\n%q\n%q", lines[0], lines[1])
	}
	if renderMatrix(nil) != "" {
		t.Error("empty matrix should render as empty string")
	}
}
