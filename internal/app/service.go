package app

import (
	"context"
	"strings"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"hkgbuild/internal/adapters"
	"hkgbuild/internal/core"
	"hkgbuild/internal/ports"
)

const (
	DefaultIndexURL         = "http://hackage.haskell.org"
	DefaultEcosystemPrefix  = "haskell-"
	DefaultToolchainName    = "ghc"
	DefaultToolchainVersion = "7.6.3-1"
	DefaultRepository       = "Apps"
	DefaultHTTPTimeoutSec   = 30
)

// Config carries the values every lookup and session depends on.
type Config struct {
	IndexURL         string
	EcosystemPrefix  string
	ToolchainName    string
	ToolchainVersion string
	Repository       string
	MaintainerName   string
	MaintainerAlias  string
	MaintainerEmail  string
	HTTPTimeoutSec   int
	UserAgent        string
	// ReusePage lets one fetched page serve every field lookup of a
	// package instead of fetching it once per field.
	ReusePage bool
}

func DefaultConfig() Config {
	return Config{
		IndexURL:         DefaultIndexURL,
		EcosystemPrefix:  DefaultEcosystemPrefix,
		ToolchainName:    DefaultToolchainName,
		ToolchainVersion: DefaultToolchainVersion,
		Repository:       DefaultRepository,
		HTTPTimeoutSec:   DefaultHTTPTimeoutSec,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.IndexURL) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("index url is required")
	}
	if strings.TrimSpace(c.ToolchainName) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("toolchain name is required")
	}
	return core.ValidateToolchainPin(c.ToolchainVersion)
}

type Service struct {
	Config       Config
	Fetcher      ports.PageFetcherPort
	Hasher       ports.ArchiveHasherPort
	RecipeReader ports.RecipeReaderPort
	RecipeWriter ports.RecipeWriterPort
	Reports      ports.ReportPort
	Clock        func() time.Time
}

func NewService(cfg Config) Service {
	client := adapters.NewHTTPClient(cfg.HTTPTimeoutSec, cfg.UserAgent)
	return Service{
		Config:       cfg,
		Fetcher:      adapters.NewPageFetcherAdapter(client),
		Hasher:       adapters.NewArchiveHasherAdapter(client),
		RecipeReader: adapters.NewRecipeReaderAdapter(),
		RecipeWriter: adapters.NewRecipeWriterAdapter(),
		Reports:      adapters.NewReportFileAdapter(),
		Clock:        time.Now,
	}
}

// normalizer builds the dependency normalizer for a validated config.
func (s Service) normalizer(ctx context.Context) core.Normalizer {
	assert.NotEmpty(ctx, s.Config.ToolchainName, "toolchain name must be set")
	assert.NotEmpty(ctx, s.Config.ToolchainVersion, "toolchain version must be set")
	return core.NewNormalizer(s.Config.EcosystemPrefix, s.Config.ToolchainName, s.Config.ToolchainVersion)
}
