package extract

// Role distinguishes the two component families a name can belong to.
type Role string

// Roles accepted by [NameResolver.Resolve].
const (
	RoleUnit   Role = "unit"
	RoleStream Role = "stream"
)

// NameResolver maps internal component keys to user-facing display
// strings. An explicit override wins verbatim; otherwise the default
// derivation collapses a hierarchical path to its leaf segment, keeping
// any index suffix (an indexed member of a unit collection renders as
// "name[index]").
//
// Resolution is pure: same key and overrides always produce the same
// display name, and unresolved keys never fail.
type NameResolver struct {
	overrides map[string]string
}

// NewNameResolver creates a resolver with the given override mapping.
// The map is copied; later mutation by the caller has no effect.
// Override keys that never match a component are simply unused, so
// override maps can be written generically before a model variant is
// chosen.
func NewNameResolver(overrides map[string]string) *NameResolver {
	copied := make(map[string]string, len(overrides))
	for k, v := range overrides {
		copied[k] = v
	}
	return &NameResolver{overrides: copied}
}

// Resolve returns the display name for a component key. The role is part
// of the contract for future derivation rules; today units and streams
// share the leaf-segment rule.
func (r *NameResolver) Resolve(id string, role Role) string {
	if name, ok := r.overrides[id]; ok {
		return name
	}
	return DeriveName(id)
}

// DeriveName applies the default derivation rule: take the leaf segment
// of a dotted hierarchical path, preserving any bracketed index suffix.
// Dots inside brackets do not split segments, so "fs.units[a.b]" stays
// one segment.
//
//	DeriveName("fs.pump_01")         // "pump_01"
//	DeriveName("fs.heaters[2]")      // "heaters[2]"
//	DeriveName("feed_to_p1")         // "feed_to_p1"
func DeriveName(id string) string {
	depth := 0
	last := 0
	for i, r := range id {
		switch r {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '.':
			if depth == 0 {
				last = i + 1
			}
		}
	}
	if last >= len(id) {
		return id
	}
	return id[last:]
}
