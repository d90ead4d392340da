package app

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hkgbuild/internal/shared"
	"hkgbuild/internal/types"
)

func TestLookupAllFields(t *testing.T) {
	fetcher := newFakeFetcher(t, map[string]string{"mtl": "mtl.html"})
	service := testService(fetcher, &fakeHasher{})

	result, err := service.Lookup(context.Background(), LookupRequest{Package: "mtl"})
	require.NoError(t, err)

	assert.Equal(t, "2.1.2", result.Version)
	assert.Equal(t, "BSD3", result.License)
	assert.Equal(t, "'ghc=7.6.3-1' 'haskell-base<6' 'haskell-transformers>=0.3.0'", result.Depends)
	if diff := cmp.Diff([]string{"1.1.1.1", "2.0.1.0", "2.1.1", "2.1.2"}, result.Versions); diff != "" {
		t.Fatalf("unexpected versions (-want +got):\n%s", diff)
	}
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, 3, fetcher.calls[result.URL], "every field fetches the page again")
}

func TestLookupReusePageFetchesOnce(t *testing.T) {
	fetcher := newFakeFetcher(t, map[string]string{"mtl": "mtl.html"})
	service := testService(fetcher, &fakeHasher{})
	service.Config.ReusePage = true

	result, err := service.Lookup(context.Background(), LookupRequest{Package: "mtl"})
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls[result.URL])
}

func TestLookupSelectedLabels(t *testing.T) {
	fetcher := newFakeFetcher(t, map[string]string{"dataenc": "no-deps.html"})
	service := testService(fetcher, &fakeHasher{})

	result, err := service.Lookup(context.Background(), LookupRequest{
		Package: "dataenc",
		Labels:  []types.FieldLabel{types.FieldLabelDependencies},
	})
	require.NoError(t, err)
	assert.Equal(t, "'ghc=7.6.3-1'", result.Depends)
	assert.Empty(t, result.Version)
	assert.Equal(t, 1, fetcher.calls[result.URL])
}

func TestLookupErrors(t *testing.T) {
	fetcher := newFakeFetcher(t, map[string]string{"broken": "missing-labels.html"})
	service := testService(fetcher, &fakeHasher{})

	_, err := service.Lookup(context.Background(), LookupRequest{Package: "broken"})
	require.Error(t, err)
	assert.True(t, shared.IsLabelNotFound(err), "got %v", err)

	_, err = service.Lookup(context.Background(), LookupRequest{Package: "absent"})
	require.Error(t, err)
	assert.True(t, shared.IsNetworkError(err), "got %v", err)

	_, err = service.Lookup(context.Background(), LookupRequest{Package: "  "})
	require.Error(t, err)

	service.Config.ToolchainVersion = "not a version"
	_, err = service.Lookup(context.Background(), LookupRequest{Package: "mtl"})
	require.Error(t, err)
}

func TestLookupRejectsMissingToolchainBeforeFetching(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "toolchain name", mutate: func(cfg *Config) { cfg.ToolchainName = " " }},
		{name: "toolchain version", mutate: func(cfg *Config) { cfg.ToolchainVersion = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := newFakeFetcher(t, map[string]string{"mtl": "mtl.html"})
			service := testService(fetcher, &fakeHasher{})
			tt.mutate(&service.Config)

			_, err := service.Lookup(context.Background(), LookupRequest{Package: "mtl"})
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Empty(t, fetcher.calls)
		})
	}
}

func TestLookupDependenciesWithValidatedToolchain(t *testing.T) {
	fetcher := newFakeFetcher(t, map[string]string{"mtl": "mtl.html"})
	service := testService(fetcher, &fakeHasher{})
	service.Config.ToolchainName = "ghc-custom"
	service.Config.ToolchainVersion = "9.4.8-2"

	result, err := service.Lookup(context.Background(), LookupRequest{
		Package: "mtl",
		Labels:  []types.FieldLabel{types.FieldLabelDependencies},
	})
	require.NoError(t, err)
	assert.Equal(t, "'ghc-custom=9.4.8-2' 'haskell-base<6' 'haskell-transformers>=0.3.0'", result.Depends)
}
