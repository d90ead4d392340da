package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"hkgbuild/internal/types"
)

// ValidateToolchainPin checks that the pinned toolchain version is a
// well-formed ver-rel package version.
func ValidateToolchainPin(version string) error {
	if strings.TrimSpace(version) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("toolchain version is required")
	}
	if _, err := debversion.NewVersion(version); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid toolchain version: %s", version)).
			WithCause(err)
	}
	return nil
}

// NextRelease proposes the pkgrel for pkgver given the prior recipe. The
// release is bumped when the version is unchanged and reset to 1
// otherwise. downgrade reports a pkgver older than the prior one.
func NextRelease(prior types.PriorRecord, pkgver string) (release string, downgrade bool) {
	previous, ok := prior.Get("pkgver")
	if !ok || strings.TrimSpace(previous) == "" {
		return "1", false
	}
	order := compareDeb(pkgver, previous)
	if order != 0 {
		return "1", order < 0
	}
	rel, err := strconv.Atoi(strings.TrimSpace(prior["pkgrel"]))
	if err != nil || rel < 1 {
		return "1", false
	}
	return strconv.Itoa(rel + 1), false
}

// compareDeb orders two package versions with dpkg rules, falling back to
// plain string comparison when either side does not parse.
func compareDeb(a string, b string) int {
	v1, err := debversion.NewVersion(strings.TrimSpace(a))
	if err != nil {
		return strings.Compare(a, b)
	}
	v2, err := debversion.NewVersion(strings.TrimSpace(b))
	if err != nil {
		return strings.Compare(a, b)
	}
	return v1.Compare(v2)
}

// ListVersions returns every version listed in the Versions row, oldest
// first.
func ListVersions(doc *Document) ([]string, error) {
	cell, err := valueCell(doc, types.FieldLabelVersions)
	if err != nil {
		return nil, err
	}
	var versions []string
	for _, token := range strings.Split(Text(cell), ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			versions = append(versions, token)
		}
	}
	return sortPep440Versions(versions), nil
}

func sortPep440Versions(versions []string) []string {
	sort.SliceStable(versions, func(i, j int) bool {
		vi, err := pep440.Parse(versions[i])
		if err != nil {
			return versions[i] < versions[j]
		}
		vj, err := pep440.Parse(versions[j])
		if err != nil {
			return versions[i] < versions[j]
		}
		return vi.Compare(vj) < 0
	})
	return versions
}

// rangeInverted reports a lower bound that orders above its upper bound.
// Versions that are not PEP 440 release numbers are never reported.
func rangeInverted(lower types.DependencySpecifier, upper types.DependencySpecifier) bool {
	switch lower.Op {
	case types.ConstraintOpGte, types.ConstraintOpGt, types.ConstraintOpEq:
	default:
		return false
	}
	if upper.Op != types.ConstraintOpLt && upper.Op != types.ConstraintOpLte {
		return false
	}
	lv, err := pep440.Parse(lower.Version)
	if err != nil {
		return false
	}
	uv, err := pep440.Parse(upper.Version)
	if err != nil {
		return false
	}
	return lv.Compare(uv) > 0
}
