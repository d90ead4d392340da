package app

import (
	"hkgbuild/internal/ports"
	"hkgbuild/internal/types"
)

type LookupRequest struct {
	Package string
	// Labels restricts the lookup; empty means every field.
	Labels []types.FieldLabel
}

type LookupResult struct {
	Package     string
	URL         string
	Version     string
	Versions    []string
	License     string
	Entries     []string
	Depends     string
	Diagnostics []types.Diagnostic
}

type SessionRequest struct {
	Prompter  ports.PrompterPort
	Package   string
	OutputDir string
	DryRun    bool
}

type SessionResult struct {
	Info     types.PackageInfo
	Written  types.WrittenRecipe
	PKGBUILD string
	Install  string
}

type BatchRequest struct {
	ListPath   string
	ReportPath string
}

type BatchResult struct {
	Report     types.BatchReport
	Failed     int
	ReportPath string
}

type InspectRequest struct {
	OutputDir string
	PkgName   string
}

type InspectResult struct {
	Path   string
	Keys   []string
	Record types.PriorRecord
}
