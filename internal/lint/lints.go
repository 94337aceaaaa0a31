package lint

// UnknownLintError reports a serialized name that does not match any lint in
// the catalog. The offending name is kept so callers can show it verbatim.
type UnknownLintError struct {
	Name string
}

func (e UnknownLintError) Error() string {
	return "unknown lint name: " + e.Name
}

// Lints is a selection of lints to run. It has set semantics: duplicates
// collapse, construction order is irrelevant, and every ordered view of it
// uses catalog order. The zero value is an empty selection.
type Lints struct {
	members map[Lint]struct{}
}

// NewLints builds a selection from the given lints.
func NewLints(lints ...Lint) Lints {
	members := make(map[Lint]struct{}, len(lints))
	for _, l := range lints {
		members[l] = struct{}{}
	}
	return Lints{members: members}
}

// Available returns a selection holding the whole catalog.
func Available() Lints {
	return NewLints(AllLints()...)
}

// Defaults returns the lints that run without any configuration.
func Defaults() Lints {
	var defaults []Lint
	for _, l := range AllLints() {
		if l.EnabledByDefault() {
			defaults = append(defaults, l)
		}
	}
	return NewLints(defaults...)
}

// FromNames resolves serialized names into a selection. Every name is
// resolved independently: unrecognized names each produce an UnknownLintError
// while the recognized ones still end up in the returned selection, so the
// caller decides whether a typo is fatal.
func FromNames(names []string) (Lints, []error) {
	selection := NewLints()
	var errs []error
	for _, name := range names {
		l, ok := FromName(name)
		if !ok {
			errs = append(errs, UnknownLintError{Name: name})
			continue
		}
		selection.members[l] = struct{}{}
	}
	return selection, errs
}

// Names returns the canonical names of the selected lints in catalog order,
// so serialized output is stable under diffing.
func (s Lints) Names() []string {
	lints := s.Slice()
	names := make([]string, 0, len(lints))
	for _, l := range lints {
		names = append(names, l.Name())
	}
	return names
}

// Slice returns the selected lints in catalog order.
func (s Lints) Slice() []Lint {
	var lints []Lint
	for l := Lint(0); l < lintCount; l++ {
		if s.Contains(l) {
			lints = append(lints, l)
		}
	}
	return lints
}

// Contains reports whether the lint is selected.
func (s Lints) Contains(l Lint) bool {
	_, ok := s.members[l]
	return ok
}

// Len returns the number of selected lints.
func (s Lints) Len() int {
	return len(s.members)
}

// Merge returns the union of two selections.
func (s Lints) Merge(other Lints) Lints {
	merged := NewLints(s.Slice()...)
	for l := range other.members {
		merged.members[l] = struct{}{}
	}
	return merged
}

// Subtract returns the lints selected here but not in other.
func (s Lints) Subtract(other Lints) Lints {
	result := NewLints()
	for l := range s.members {
		if !other.Contains(l) {
			result.members[l] = struct{}{}
		}
	}
	return result
}

// Equal reports whether two selections pick the same lints.
func (s Lints) Equal(other Lints) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for l := range s.members {
		if !other.Contains(l) {
			return false
		}
	}
	return true
}
