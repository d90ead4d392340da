// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hkgbuild/internal/types"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// ReadFixture returns the content of a file under fixtures/.
func ReadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(RepoRoot(t), "fixtures", name))
	require.NoError(t, err)
	return string(data)
}

// FixturePages maps index page paths to fixture contents, keyed the way
// an index serves them: /package/<name>.
func FixturePages(t *testing.T, fixtures map[string]string) map[string]string {
	t.Helper()
	pages := map[string]string{}
	for name, fixture := range fixtures {
		pages["/package/"+name] = ReadFixture(t, fixture)
	}
	return pages
}

// ArchiveBody is what the fixture index serves for every source archive.
const ArchiveBody = "source archive"

// ServeIndex starts an index serving pages and a constant body for every
// path under /packages/archive/.
func ServeIndex(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/packages/archive/") {
			_, _ = w.Write([]byte(ArchiveBody))
			return
		}
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(server.Close)
	return server
}

// PageFetcher serves index pages from memory, keyed by full URL.
type PageFetcher map[string]string

func (f PageFetcher) Fetch(ctx context.Context, url string) (types.IndexDocument, error) {
	page, ok := f[url]
	if !ok {
		return types.IndexDocument{}, os.ErrNotExist
	}
	return types.IndexDocument{URL: url, Content: page}, nil
}

// StaticHasher returns the same checksum for every archive.
type StaticHasher string

func (h StaticHasher) Hash(ctx context.Context, url string) (string, error) {
	return string(h), nil
}

// InstallPriorRecipe copies fixtures/PKGBUILD.prior to dir/pkgname/PKGBUILD.
func InstallPriorRecipe(t *testing.T, dir string, pkgname string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, pkgname), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, pkgname, "PKGBUILD"), []byte(ReadFixture(t, "PKGBUILD.prior")), 0644))
}
