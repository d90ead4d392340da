package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"hkgbuild/internal/types"
)

// opTokens is the ordered list of operators recognised at the start of a
// bound. Longer tokens must precede shorter ones (">=" before ">").
var opTokens = []string{">=", "<=", "==", "=", ">", "<"}

const rangeSeparator = " & "

var glyphReplacer = strings.NewReplacer("≤", "<=", "≥", ">=")

// ParseEntry turns one raw dependency token such as "mtl (≥2.1 & <2.2)"
// into specifiers named prefix+name. An entry without a constraint yields
// a single unconstrained specifier; a range yields the lower and the upper
// bound in that order.
func ParseEntry(raw string, prefix string) ([]types.DependencySpecifier, error) {
	entry := strings.TrimSpace(raw)
	if entry == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty dependency entry")
	}
	name, constraint, _ := strings.Cut(entry, " ")
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "(") {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("dependency entry has no name: %s", entry))
	}
	name = prefix + name

	constraint = strings.TrimSpace(constraint)
	constraint = strings.TrimSuffix(strings.TrimPrefix(constraint, "("), ")")
	constraint = strings.TrimSpace(glyphReplacer.Replace(constraint))
	if constraint == "" {
		return []types.DependencySpecifier{{Name: name}}, nil
	}

	bounds := []string{constraint}
	if lower, upper, ok := strings.Cut(constraint, rangeSeparator); ok {
		bounds = []string{lower, upper}
	}
	specs := make([]types.DependencySpecifier, 0, len(bounds))
	for _, bound := range bounds {
		op, version, err := NormalizeBound(bound)
		if err != nil {
			return nil, err
		}
		specs = append(specs, types.DependencySpecifier{Name: name, Op: op, Version: version})
	}
	return specs, nil
}

// NormalizeBound rewrites one version bound into canonical operator form.
// A wildcard component is zeroed. A wildcard bound that is bare or an
// equality means "at least" that series; ordering operators are kept as
// given. A bare version means an exact match.
func NormalizeBound(raw string) (types.ConstraintOp, string, error) {
	bound := strings.TrimSpace(glyphReplacer.Replace(raw))
	op, version, explicit := splitOp(bound)
	if strings.Contains(version, "*") {
		version = strings.ReplaceAll(version, "*", "0")
		if op == types.ConstraintOpNone || op == types.ConstraintOpEq {
			op = types.ConstraintOpGte
		}
	} else if !explicit {
		op = types.ConstraintOpEq
	}
	if version == "" {
		return types.ConstraintOpNone, "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("bound has no version: %q", raw))
	}
	return op, version, nil
}

func splitOp(bound string) (types.ConstraintOp, string, bool) {
	for _, token := range opTokens {
		if !strings.HasPrefix(bound, token) {
			continue
		}
		op := types.ConstraintOp(token)
		if token == "==" {
			op = types.ConstraintOpEq
		}
		return op, strings.TrimSpace(strings.TrimPrefix(bound, token)), true
	}
	return types.ConstraintOpNone, bound, false
}
