package adapters

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"hkgbuild/internal/ports"
	"hkgbuild/internal/types"
)

//go:embed templates/PKGBUILD.tmpl templates/install.tmpl
var recipeTemplates embed.FS

var (
	pkgbuildTemplate = template.Must(template.ParseFS(recipeTemplates, "templates/PKGBUILD.tmpl"))
	installTemplate  = template.Must(template.ParseFS(recipeTemplates, "templates/install.tmpl"))
)

type RecipeWriterAdapter struct{}

func NewRecipeWriterAdapter() RecipeWriterAdapter {
	return RecipeWriterAdapter{}
}

// Render returns the PKGBUILD and the installer script for info.
func (a RecipeWriterAdapter) Render(info types.PackageInfo) (string, string, error) {
	var pkgbuild bytes.Buffer
	if err := pkgbuildTemplate.Execute(&pkgbuild, info); err != nil {
		return "", "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render PKGBUILD").
			WithCause(err)
	}
	var install bytes.Buffer
	if err := installTemplate.Execute(&install, info); err != nil {
		return "", "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render install script").
			WithCause(err)
	}
	return pkgbuild.String(), install.String(), nil
}

// Write renders info into <dir>/<pkgname>/PKGBUILD and
// <dir>/<pkgname>/<pkgname>.install, replacing existing files.
func (a RecipeWriterAdapter) Write(dir string, info types.PackageInfo) (types.WrittenRecipe, error) {
	if strings.TrimSpace(info.PkgName) == "" {
		return types.WrittenRecipe{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	pkgbuild, install, err := a.Render(info)
	if err != nil {
		return types.WrittenRecipe{}, err
	}
	recipeDir := filepath.Join(dir, info.PkgName)
	pkgbuildPath, err := ensurePath(recipeDir, "PKGBUILD")
	if err != nil {
		return types.WrittenRecipe{}, err
	}
	installPath := filepath.Join(recipeDir, info.PkgName+".install")
	if err := writeRecipeFile(pkgbuildPath, pkgbuild); err != nil {
		return types.WrittenRecipe{}, err
	}
	if err := writeRecipeFile(installPath, install); err != nil {
		return types.WrittenRecipe{}, err
	}
	log.Info().Str("path", pkgbuildPath).Msg("saved PKGBUILD")
	log.Info().Str("path", installPath).Msg("saved install script")
	return types.WrittenRecipe{
		Dir:          recipeDir,
		PKGBUILDPath: pkgbuildPath,
		InstallPath:  installPath,
	}, nil
}

func ensurePath(dir string, name string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(dir, name), nil
}

func writeRecipeFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + filepath.Base(path)).
			WithCause(err)
	}
	return nil
}

var _ ports.RecipeWriterPort = RecipeWriterAdapter{}
