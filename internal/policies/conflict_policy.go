package policies

import (
	"fmt"
	"strings"

	"hkgbuild/internal/types"
)

// DuplicatePolicy decides what happens when two dependency entries
// normalize to the same prefixed name. The later entry always replaces
// the earlier one; the replacement is reported so callers can surface it.
type DuplicatePolicy struct{}

func NewDuplicatePolicy() DuplicatePolicy {
	return DuplicatePolicy{}
}

// Apply stores specs under name in set and returns a diagnostic when an
// earlier constraint was overwritten.
func (DuplicatePolicy) Apply(set types.DependencySet, name string, specs []types.DependencySpecifier, entry string) (types.Diagnostic, bool) {
	previous, exists := set[name]
	set[name] = specs
	if !exists {
		return types.Diagnostic{}, false
	}
	return types.Diagnostic{
		Entry:  entry,
		Reason: fmt.Sprintf("replaces earlier constraint %s", describe(previous)),
	}, true
}

func describe(specs []types.DependencySpecifier) string {
	if len(specs) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(specs))
	for _, spec := range specs {
		parts = append(parts, spec.String())
	}
	return strings.Join(parts, " ")
}
