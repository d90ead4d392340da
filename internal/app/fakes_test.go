package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hkgbuild/internal/adapters"
	"hkgbuild/internal/ports"
	"hkgbuild/internal/shared"
	"hkgbuild/internal/types"
)

const testIndexURL = "http://hackage.test"

type fakeFetcher struct {
	pages map[string]string
	calls map[string]int
}

func newFakeFetcher(t *testing.T, fixtures map[string]string) *fakeFetcher {
	t.Helper()
	pages := map[string]string{}
	for name, fixture := range fixtures {
		data, err := os.ReadFile(filepath.Join("..", "..", "fixtures", fixture))
		require.NoError(t, err)
		pages[shared.PackagePageURL(testIndexURL, name)] = string(data)
	}
	return &fakeFetcher{pages: pages, calls: map[string]int{}}
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (types.IndexDocument, error) {
	f.calls[url]++
	content, ok := f.pages[url]
	if !ok {
		return types.IndexDocument{}, shared.NetworkError(url, shared.HTTPStatusError(404, url))
	}
	return types.IndexDocument{URL: url, Content: content}, nil
}

type fakeHasher struct {
	urls []string
	err  error
}

func (h *fakeHasher) Hash(ctx context.Context, url string) (string, error) {
	h.urls = append(h.urls, url)
	if h.err != nil {
		return "", h.err
	}
	return "deadbeef", nil
}

// scriptedPrompter answers from a map keyed by field name and falls back
// to the field default.
type scriptedPrompter struct {
	answers map[string]string
	choice  int
	asked   []ports.Field
}

func (p *scriptedPrompter) Ask(field ports.Field) (string, error) {
	p.asked = append(p.asked, field)
	if answer, ok := p.answers[field.Name]; ok {
		return answer, nil
	}
	if field.Default == "" && field.Required {
		return "", ports.ErrCancelled
	}
	return field.Default, nil
}

func (p *scriptedPrompter) Choose(message string, options []string) (int, error) {
	return p.choice, nil
}

func (p *scriptedPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	return defaultYes, nil
}

func (p *scriptedPrompter) field(name string) (ports.Field, bool) {
	for _, field := range p.asked {
		if field.Name == name {
			return field, true
		}
	}
	return ports.Field{}, false
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.IndexURL = testIndexURL
	cfg.MaintainerName = "Jane Doe"
	cfg.MaintainerAlias = "jd"
	cfg.MaintainerEmail = "jd@example.org"
	return cfg
}

func testService(fetcher ports.PageFetcherPort, hasher ports.ArchiveHasherPort) Service {
	return Service{
		Config:       testConfig(),
		Fetcher:      fetcher,
		Hasher:       hasher,
		RecipeReader: adapters.NewRecipeReaderAdapter(),
		RecipeWriter: adapters.NewRecipeWriterAdapter(),
		Reports:      adapters.NewReportFileAdapter(),
		Clock: func() time.Time {
			return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
		},
	}
}

var errBoom = errors.New("boom")
