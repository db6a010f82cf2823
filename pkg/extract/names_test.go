package extract

import "testing"

func TestDeriveName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"fs.pump_01", "pump_01"},
		{"fs.subsys.pump_01", "pump_01"},
		{"pump_01", "pump_01"},
		{"fs.heaters[2]", "heaters[2]"},
		{"fs.units[a.b]", "units[a.b]"},
		{"fs.units[a.b].inner", "inner"},
		{"fs.trailing.", "fs.trailing."},
		{"", ""},
		{"fs.bad[unclosed.x", "bad[unclosed.x"},
	}
	for _, tt := range tests {
		if got := DeriveName(tt.id); got != tt.want {
			t.Errorf("DeriveName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestResolveOverridePrecedence(t *testing.T) {
	r := NewNameResolver(map[string]string{
		"fs.pump_01": "Main Pump",
		"s01":        "Feed Stream",
	})

	if got := r.Resolve("fs.pump_01", RoleUnit); got != "Main Pump" {
		t.Errorf("unit override = %q, want Main Pump", got)
	}
	if got := r.Resolve("s01", RoleStream); got != "Feed Stream" {
		t.Errorf("stream override = %q, want Feed Stream", got)
	}
	// No override: fall back to derivation.
	if got := r.Resolve("fs.pump_02", RoleUnit); got != "pump_02" {
		t.Errorf("derived = %q, want pump_02", got)
	}
}

func TestResolverCopiesOverrides(t *testing.T) {
	overrides := map[string]string{"fs.a": "A"}
	r := NewNameResolver(overrides)
	overrides["fs.a"] = "mutated"

	if got := r.Resolve("fs.a", RoleUnit); got != "A" {
		t.Errorf("Resolve after caller mutation = %q, want A", got)
	}
}

func TestResolveEmptyOverrideValue(t *testing.T) {
	// An empty override value is taken verbatim, not re-derived.
	r := NewNameResolver(map[string]string{"fs.a": ""})
	if got := r.Resolve("fs.a", RoleUnit); got != "" {
		t.Errorf("Resolve = %q, want empty string", got)
	}
}
