package app

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Inspect reads back the recipe previously written for a package.
func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	pkgname := strings.TrimSpace(req.PkgName)
	if pkgname == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		outputDir = "."
	}
	path := filepath.Join(outputDir, pkgname, "PKGBUILD")
	record, err := s.RecipeReader.Read(path)
	if err != nil {
		return InspectResult{}, err
	}
	if len(record) == 0 {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no PKGBUILD found at %s", path))
	}
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return InspectResult{Path: path, Keys: keys, Record: record}, nil
}
