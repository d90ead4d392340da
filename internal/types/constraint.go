package types

import "sort"

// DependencySpecifier is one normalized constraint on a dependency. An
// unconstrained specifier has ConstraintOpNone and an empty Version.
type DependencySpecifier struct {
	Name    string
	Op      ConstraintOp
	Version string
}

func (s DependencySpecifier) Unconstrained() bool {
	return s.Op == ConstraintOpNone
}

// String renders the specifier as name+op+version, or the bare name when
// unconstrained.
func (s DependencySpecifier) String() string {
	if s.Unconstrained() {
		return s.Name
	}
	return s.Name + string(s.Op) + s.Version
}

// DependencySet maps a prefixed dependency name to one specifier, or to a
// lower and upper bound pair.
type DependencySet map[string][]DependencySpecifier

// Names returns the dependency names in lexicographic order.
func (s DependencySet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Diagnostic describes a dependency token that was skipped or kept with a
// warning during normalization.
type Diagnostic struct {
	Entry  string
	Reason string
}
