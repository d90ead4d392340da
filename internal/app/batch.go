package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"hkgbuild/internal/shared"
	"hkgbuild/internal/types"
)

// Batch looks up every package of a list, one after another. A failing
// package is recorded in the report and does not stop the batch.
func (s Service) Batch(ctx context.Context, req BatchRequest) (BatchResult, error) {
	if strings.TrimSpace(req.ListPath) == "" {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package list path is required")
	}
	if err := s.Config.Validate(); err != nil {
		return BatchResult{}, err
	}
	names, err := s.Reports.ReadPackageList(req.ListPath)
	if err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{Report: types.BatchReport{IndexURL: s.Config.IndexURL}}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return result, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("batch interrupted").
				WithCause(err)
		}
		entry := types.BatchPackageReport{Name: name}
		lookup, err := s.Lookup(ctx, LookupRequest{Package: name})
		if err != nil {
			entry.Error = shared.ErrorMessage(err)
			result.Failed++
			log.Warn().Str("package", name).Err(err).Msg("lookup failed")
		} else {
			entry.Version = lookup.Version
			entry.License = lookup.License
			entry.Depends = lookup.Depends
			for _, diag := range lookup.Diagnostics {
				entry.Diagnostics = append(entry.Diagnostics, describeDiagnostic(diag))
			}
		}
		result.Report.Packages = append(result.Report.Packages, entry)
	}

	if path := strings.TrimSpace(req.ReportPath); path != "" {
		if err := s.Reports.WriteReport(path, result.Report); err != nil {
			return result, err
		}
		result.ReportPath = path
		log.Info().Str("path", path).Int("packages", len(names)).Int("failed", result.Failed).Msg("batch report written")
	}
	return result, nil
}
