package core

import (
	"fmt"
	"strings"

	"hkgbuild/internal/policies"
	"hkgbuild/internal/shared"
	"hkgbuild/internal/types"
)

// Normalizer turns raw dependency entries into a DependencySet. Every set
// it produces carries the toolchain pin.
type Normalizer struct {
	EcosystemPrefix  string
	ToolchainName    string
	ToolchainVersion string
}

func NewNormalizer(ecosystemPrefix string, toolchainName string, toolchainVersion string) Normalizer {
	return Normalizer{
		EcosystemPrefix:  ecosystemPrefix,
		ToolchainName:    toolchainName,
		ToolchainVersion: toolchainVersion,
	}
}

type NormalizeResult struct {
	Set         types.DependencySet
	Diagnostics []types.Diagnostic
}

// Normalize parses every entry, skipping the ones that cannot be parsed.
// Skipped entries, overwritten names and inverted ranges are reported as
// diagnostics; none of them aborts the lookup. The toolchain pin is
// applied last and replaces any entry that normalized to the same name.
func (n Normalizer) Normalize(entries []string) NormalizeResult {
	set := types.DependencySet{}
	duplicates := policies.NewDuplicatePolicy()
	var diagnostics []types.Diagnostic
	for _, entry := range entries {
		specs, err := ParseEntry(entry, n.EcosystemPrefix)
		if err != nil {
			diagnostics = append(diagnostics, types.Diagnostic{
				Entry:  entry,
				Reason: "skipped: " + shared.ErrorMessage(err),
			})
			continue
		}
		if diag, replaced := duplicates.Apply(set, specs[0].Name, specs, entry); replaced {
			diagnostics = append(diagnostics, diag)
		}
		if len(specs) == 2 && rangeInverted(specs[0], specs[1]) {
			diagnostics = append(diagnostics, types.Diagnostic{
				Entry:  entry,
				Reason: fmt.Sprintf("lower bound %s is above upper bound %s", specs[0].Version, specs[1].Version),
			})
		}
	}
	pin := []types.DependencySpecifier{{
		Name:    n.ToolchainName,
		Op:      types.ConstraintOpEq,
		Version: n.ToolchainVersion,
	}}
	if diag, replaced := duplicates.Apply(set, n.ToolchainName, pin, n.ToolchainName); replaced {
		diagnostics = append(diagnostics, diag)
	}
	return NormalizeResult{Set: set, Diagnostics: diagnostics}
}

func (r NormalizeResult) Serialize() string {
	return Serialize(r.Set)
}

// Serialize renders set as space separated, single quoted name+op+version
// tokens in name order. Ranges emit the lower bound first; unconstrained
// names are emitted bare.
func Serialize(set types.DependencySet) string {
	var tokens []string
	for _, name := range set.Names() {
		for _, spec := range set[name] {
			tokens = append(tokens, "'"+spec.String()+"'")
		}
	}
	return strings.Join(tokens, " ")
}
