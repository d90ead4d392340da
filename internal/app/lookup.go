package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"hkgbuild/internal/core"
	"hkgbuild/internal/shared"
	"hkgbuild/internal/types"
)

// Lookup reads the requested fields of one package from its index page.
func (s Service) Lookup(ctx context.Context, req LookupRequest) (LookupResult, error) {
	if err := s.Config.Validate(); err != nil {
		return LookupResult{}, err
	}
	name := strings.TrimSpace(req.Package)
	if name == "" {
		return LookupResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	labels := req.Labels
	if len(labels) == 0 {
		labels = types.FieldLabels
	}
	lookup := s.newPageLookup(name)
	result := LookupResult{Package: name, URL: lookup.url}
	for _, label := range labels {
		if err := lookup.field(ctx, label, &result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// pageLookup resolves fields of one package page. Unless the service
// reuses pages, every field triggers its own fetch.
type pageLookup struct {
	service Service
	url     string
	cached  *core.Document
}

func (s Service) newPageLookup(name string) *pageLookup {
	return &pageLookup{
		service: s,
		url:     shared.PackagePageURL(s.Config.IndexURL, name),
	}
}

func (l *pageLookup) document(ctx context.Context) (*core.Document, error) {
	if l.cached != nil {
		return l.cached, nil
	}
	page, err := l.service.Fetcher.Fetch(ctx, l.url)
	if err != nil {
		return nil, err
	}
	doc, err := core.ParseDocument(page)
	if err != nil {
		return nil, err
	}
	if l.service.Config.ReusePage {
		l.cached = doc
	}
	return doc, nil
}

func (l *pageLookup) field(ctx context.Context, label types.FieldLabel, result *LookupResult) error {
	doc, err := l.document(ctx)
	if err != nil {
		return err
	}
	value, err := core.Extract(doc, label)
	if err != nil {
		return err
	}
	switch label {
	case types.FieldLabelVersions:
		result.Version = value.Text
		versions, err := core.ListVersions(doc)
		if err != nil {
			return err
		}
		result.Versions = versions
	case types.FieldLabelLicense:
		result.License = value.Text
	case types.FieldLabelDependencies:
		normalized := l.service.normalizer(ctx).Normalize(value.Entries)
		result.Entries = value.Entries
		result.Depends = normalized.Serialize()
		result.Diagnostics = normalized.Diagnostics
		for _, diag := range normalized.Diagnostics {
			log.Warn().
				Str("package", result.Package).
				Str("entry", diag.Entry).
				Msg(diag.Reason)
		}
	}
	log.Debug().Str("package", result.Package).Str("label", string(label)).Msg("field resolved")
	return nil
}

func describeDiagnostic(diag types.Diagnostic) string {
	return fmt.Sprintf("%q: %s", diag.Entry, diag.Reason)
}
