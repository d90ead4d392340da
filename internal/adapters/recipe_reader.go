package adapters

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"hkgbuild/internal/ports"
	"hkgbuild/internal/types"
)

var recipeStringKeys = map[string]struct{}{
	"pkgname":   {},
	"pkgver":    {},
	"pkgrel":    {},
	"pkgdesc":   {},
	"url":       {},
	"install":   {},
	"changelog": {},
}

var recipeArrayKeys = map[string]struct{}{
	"arch":         {},
	"license":      {},
	"groups":       {},
	"depends":      {},
	"optdepends":   {},
	"makedepends":  {},
	"checkdepends": {},
	"provides":     {},
	"conflicts":    {},
	"replaces":     {},
	"options":      {},
	"source":       {},
}

type RecipeReaderAdapter struct{}

func NewRecipeReaderAdapter() RecipeReaderAdapter {
	return RecipeReaderAdapter{}
}

// Read parses the assignments of a PKGBUILD. Array values keep their
// quoted elements separated by single spaces.
func (a RecipeReaderAdapter) Read(path string) (types.PriorRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.PriorRecord{}, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read PKGBUILD").
			WithCause(err)
	}
	record := types.PriorRecord{}
	for _, line := range joinContinuations(string(content)) {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if _, isString := recipeStringKeys[key]; isString {
			record[key] = strings.Trim(value, `"'`)
			continue
		}
		if _, isArray := recipeArrayKeys[key]; isArray {
			record[key] = strings.Join(strings.Fields(strings.Trim(value, `()"`)), " ")
		}
	}
	return record, nil
}

// joinContinuations merges lines ending in a backslash with the line that
// follows.
func joinContinuations(content string) []string {
	var lines []string
	var pending strings.Builder
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasSuffix(line, `\`) {
			pending.WriteString(strings.TrimSuffix(line, `\`))
			continue
		}
		if pending.Len() > 0 {
			pending.WriteString(line)
			line = pending.String()
			pending.Reset()
		}
		lines = append(lines, line)
	}
	if pending.Len() > 0 {
		lines = append(lines, pending.String())
	}
	return lines
}

var _ ports.RecipeReaderPort = RecipeReaderAdapter{}
