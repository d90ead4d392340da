package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"hkgbuild/internal/core"
	"hkgbuild/internal/ports"
	"hkgbuild/internal/shared"
	"hkgbuild/internal/types"
)

// Session walks the maintainer through every recipe field for one
// package, proposing scraped and previously recorded values as defaults,
// then writes PKGBUILD and the install script. Leaving a required field
// empty returns ports.ErrCancelled.
func (s Service) Session(ctx context.Context, req SessionRequest) (SessionResult, error) {
	if req.Prompter == nil {
		return SessionResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("prompter is required")
	}
	if err := s.Config.Validate(); err != nil {
		return SessionResult{}, err
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		outputDir = "."
	}
	q := questioner{prompter: req.Prompter}
	cfg := s.Config

	info := types.PackageInfo{
		Date:     s.now(),
		IndexURL: strings.TrimRight(cfg.IndexURL, "/"),
	}
	info.Repository = q.required("repository", "Enter repository", cfg.Repository)
	info.MaintainerName = q.required("maintainer_name", "Enter your name", cfg.MaintainerName)
	info.MaintainerAlias = q.required("maintainer_alias", "Enter your alias", cfg.MaintainerAlias)
	info.MaintainerEmail = q.required("maintainer_email", "Enter your e-mail", cfg.MaintainerEmail)
	info.IndexName = q.required("_hkgname", "Enter Hackage name", strings.TrimSpace(req.Package))
	if q.err != nil {
		return SessionResult{}, q.err
	}
	info.PkgName = q.required("pkgname", "Enter package name", cfg.EcosystemPrefix+info.IndexName)
	if q.err != nil {
		return SessionResult{}, q.err
	}

	priorPath := filepath.Join(outputDir, info.PkgName, "PKGBUILD")
	prior, err := s.RecipeReader.Read(priorPath)
	if err != nil {
		return SessionResult{}, err
	}
	if len(prior) > 0 {
		log.Info().Str("path", priorPath).Msg("existing PKGBUILD found")
	}

	lookup := s.newPageLookup(info.IndexName)
	facts := LookupResult{Package: info.IndexName, URL: lookup.url}
	if err := lookup.field(ctx, types.FieldLabelVersions, &facts); err != nil {
		return SessionResult{}, err
	}
	info.PkgVer = q.ask(ports.Field{
		Name:     "pkgver",
		Message:  "Enter package version",
		Default:  facts.Version,
		Required: true,
		Hints:    hints(prior, "pkgver", "Previous version", "Latest version", facts.Version),
	})
	if q.err != nil {
		return SessionResult{}, q.err
	}

	release, downgrade := core.NextRelease(prior, info.PkgVer)
	if downgrade {
		previous, _ := prior.Get("pkgver")
		log.Warn().
			Str("previous", previous).
			Str("pkgver", info.PkgVer).
			Msg("package version is older than the previous recipe")
	}
	info.PkgRel = q.ask(ports.Field{
		Name:     "pkgrel",
		Message:  "Enter package release",
		Default:  release,
		Required: true,
		Hints:    hints(prior, "pkgrel", "Previous release", "", ""),
	})
	info.PkgDesc = q.ask(ports.Field{
		Name:     "pkgdesc",
		Message:  "Enter package description",
		Default:  prior["pkgdesc"],
		Required: true,
		Hints:    hints(prior, "pkgdesc", "Previous description", "", ""),
	})
	info.Arch = string(q.arch(prior))
	if q.err != nil {
		return SessionResult{}, q.err
	}

	if err := lookup.field(ctx, types.FieldLabelLicense, &facts); err != nil {
		return SessionResult{}, err
	}
	info.License = q.ask(ports.Field{
		Name:     "license",
		Message:  "Enter license",
		Default:  facts.License,
		Required: true,
		Hints:    hints(prior, "license", "Previous license", "License", facts.License),
	})
	info.Groups = q.optional(prior, "groups", "Enter group(s) (optional)", "Previous group(s)", "")
	if q.err != nil {
		return SessionResult{}, q.err
	}

	if err := lookup.field(ctx, types.FieldLabelDependencies, &facts); err != nil {
		return SessionResult{}, err
	}
	info.Depends = q.ask(ports.Field{
		Name:     "depends",
		Message:  "Enter dependencies",
		Default:  facts.Depends,
		Required: true,
		Hints:    hints(prior, "depends", "Previous dependencies", "Dependencies", facts.Depends),
	})
	info.OptDepends = q.optional(prior, "optdepends", "Enter optional dependencies (optional)", "Previous optional dependencies", "")
	info.MakeDepends = q.optional(prior, "makedepends", "Enter make-dependencies (optional)", "Previous make-dependencies", "")
	info.CheckDepends = q.optional(prior, "checkdepends", "Enter check-dependencies (optional)", "Previous check-dependencies", "")
	info.Provides = q.optional(prior, "provides", "Enter provides (optional)", "Previous provides", "")
	info.Conflicts = q.optional(prior, "conflicts", "Enter conflicts (optional)", "Previous conflicts", "")
	info.Replaces = q.optional(prior, "replaces", "Enter replaces (optional)", "Previous replaces", "")
	info.Options = q.optional(prior, "options", "Enter options (optional)", "Previous options", prior["options"])
	if q.err != nil {
		return SessionResult{}, q.err
	}

	checksum, err := s.Hasher.Hash(ctx, shared.SourceArchiveURL(cfg.IndexURL, info.IndexName, info.PkgVer))
	if err != nil {
		return SessionResult{}, err
	}
	info.Checksum = checksum

	if req.DryRun {
		pkgbuild, install, err := s.RecipeWriter.Render(info)
		if err != nil {
			return SessionResult{}, err
		}
		return SessionResult{Info: info, PKGBUILD: pkgbuild, Install: install}, nil
	}
	written, err := s.RecipeWriter.Write(outputDir, info)
	if err != nil {
		return SessionResult{}, err
	}
	return SessionResult{Info: info, Written: written}, nil
}

func (s Service) now() string {
	if s.Clock == nil {
		return ""
	}
	return s.Clock().Format("2006-01-02")
}

// questioner stops asking after the first failed answer and keeps that
// error for the caller.
type questioner struct {
	prompter ports.PrompterPort
	err      error
}

func (q *questioner) ask(field ports.Field) string {
	if q.err != nil {
		return ""
	}
	answer, err := q.prompter.Ask(field)
	if err != nil {
		q.err = err
		return ""
	}
	return answer
}

func (q *questioner) required(name string, message string, def string) string {
	return q.ask(ports.Field{Name: name, Message: message, Default: def, Required: true})
}

func (q *questioner) optional(prior types.PriorRecord, name string, message string, previousLabel string, def string) string {
	return q.ask(ports.Field{
		Name:    name,
		Message: message,
		Default: def,
		Hints:   hints(prior, name, previousLabel, "", ""),
	})
}

func (q *questioner) arch(prior types.PriorRecord) types.Architecture {
	if q.err != nil {
		return ""
	}
	message := "Select architecture(s)"
	if previous, ok := prior.Get("arch"); ok && previous != "" {
		message += " (previous: " + previous + ")"
	}
	labels := make([]string, 0, len(types.ArchitectureChoices))
	for _, choice := range types.ArchitectureChoices {
		labels = append(labels, choice.Label)
	}
	index, err := q.prompter.Choose(message, labels)
	if err != nil {
		q.err = err
		return ""
	}
	if index < 0 || index >= len(types.ArchitectureChoices) {
		q.err = ports.ErrCancelled
		return ""
	}
	return types.ArchitectureChoices[index].Value
}

// hints lists the previously recorded value of key and the scraped value,
// whichever are known.
func hints(prior types.PriorRecord, key string, previousLabel string, scrapedLabel string, scraped string) []string {
	var out []string
	if previous, ok := prior.Get(key); ok && previous != "" {
		out = append(out, previousLabel+": "+previous)
	}
	if scrapedLabel != "" && scraped != "" {
		out = append(out, scrapedLabel+": "+scraped)
	}
	return out
}
