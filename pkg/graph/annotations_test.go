package graph

import "testing"

func TestAnnotationOrder(t *testing.T) {
	s := NewAnnotationStore()
	s.Set("s1", "temperature", "320 K")
	s.Set("s1", "pressure", "2 bar")
	s.Set("s1", "flow", "10 kg/s")

	got := s.Get("s1")
	wantKeys := []string{"temperature", "pressure", "flow"}
	if len(got) != len(wantKeys) {
		t.Fatalf("Get() returned %d annotations, want %d", len(got), len(wantKeys))
	}
	for i, k := range wantKeys {
		if got[i].Key != k {
			t.Errorf("annotation %d key = %q, want %q (insertion order)", i, got[i].Key, k)
		}
	}
}

func TestAnnotationUpdateKeepsPosition(t *testing.T) {
	s := NewAnnotationStore()
	s.Set("u1", "duty", "1 MW")
	s.Set("u1", "area", "5 m2")
	s.Set("u1", "duty", "2 MW")

	got := s.Get("u1")
	if len(got) != 2 {
		t.Fatalf("Get() returned %d annotations, want 2", len(got))
	}
	if got[0].Key != "duty" || got[0].Value != "2 MW" {
		t.Errorf("first annotation = %+v, want updated duty in original position", got[0])
	}
}

func TestAnnotationUnknownID(t *testing.T) {
	s := NewAnnotationStore()
	if anns := s.Get("nobody"); anns != nil {
		t.Errorf("Get(unknown) = %v, want nil", anns)
	}
	if s.Has("nobody") {
		t.Error("Has(unknown) = true")
	}
}

func TestAnnotationClear(t *testing.T) {
	s := NewAnnotationStore()
	s.Set("s1", "k", "v")
	s.Set("s2", "k", "v")
	s.Clear()

	if s.Has("s1") || s.Has("s2") {
		t.Error("Clear() left annotations behind")
	}

	// Store stays usable after a clear.
	s.Set("s1", "k2", "v2")
	if !s.Has("s1") {
		t.Error("Set() after Clear() did not stick")
	}
}
