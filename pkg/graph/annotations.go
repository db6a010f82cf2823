package graph

// Annotation is a single key/value pair attached to a unit or stream.
type Annotation struct {
	Key   string
	Value string
}

// AnnotationStore holds optional key/value metadata attached to units or
// streams, keyed by component ID. Formatters consult it to produce
// extended labels (for example stream flow values in a diagram).
//
// Keys within a component keep insertion order, so annotation lines in
// diagram output are byte-stable. Setting an existing key updates the
// value in place without changing its position.
//
// The store is mutable and not synchronized; callers that annotate from
// multiple goroutines must serialize access externally. It lives beside
// a Graph, never inside it - the graph's structural fields stay immutable
// after extraction.
type AnnotationStore struct {
	entries map[string]*annotationSet
}

type annotationSet struct {
	keys   []string
	values map[string]string
}

// NewAnnotationStore creates an empty annotation store.
func NewAnnotationStore() *AnnotationStore {
	return &AnnotationStore{entries: make(map[string]*annotationSet)}
}

// Set attaches an annotation to the component with the given ID.
// Unknown IDs are accepted; formatters simply never consult them.
func (s *AnnotationStore) Set(id, key, value string) {
	set, ok := s.entries[id]
	if !ok {
		set = &annotationSet{values: make(map[string]string)}
		s.entries[id] = set
	}
	if _, exists := set.values[key]; !exists {
		set.keys = append(set.keys, key)
	}
	set.values[key] = value
}

// Get returns the annotations for a component in insertion order.
// Returns nil if the component has no annotations.
func (s *AnnotationStore) Get(id string) []Annotation {
	set, ok := s.entries[id]
	if !ok {
		return nil
	}
	out := make([]Annotation, len(set.keys))
	for i, k := range set.keys {
		out[i] = Annotation{Key: k, Value: set.values[k]}
	}
	return out
}

// Has reports whether the component has at least one annotation.
func (s *AnnotationStore) Has(id string) bool {
	set, ok := s.entries[id]
	return ok && len(set.keys) > 0
}

// Clear removes all annotations from the store.
// Entries are additive via Set and fully clearable here; there is no
// implicit merging across stores.
func (s *AnnotationStore) Clear() {
	s.entries = make(map[string]*annotationSet)
}
