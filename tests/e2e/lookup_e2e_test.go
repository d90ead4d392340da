package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hkgbuild/tests/testutil"
)

func TestLookupCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	server := testutil.ServeIndex(t, testutil.FixturePages(t, map[string]string{"mtl": "mtl.html"}))

	cmd := exec.Command("go", "run", "./cmd/hkgbuild", "lookup", "mtl",
		"--index-url", server.URL,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	assert.Contains(t, string(out), "version: 2.1.2")
	assert.Contains(t, string(out), "depends: 'ghc=7.6.3-1' 'haskell-base<6' 'haskell-transformers>=0.3.0'")
}

func TestNewCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	server := testutil.ServeIndex(t, testutil.FixturePages(t, map[string]string{"mtl": "mtl.html"}))
	outDir := t.TempDir()
	testutil.InstallPriorRecipe(t, outDir, "haskell-mtl")

	cmd := exec.Command("go", "run", "./cmd/hkgbuild", "new", "mtl",
		"--non-interactive",
		"--output", outDir,
		"--index-url", server.URL,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(),
		"GO111MODULE=on",
		"HKGBUILD_MAINTAINER_NAME=Jane Doe",
		"HKGBUILD_MAINTAINER_ALIAS=jd",
		"HKGBUILD_MAINTAINER_EMAIL=jd@example.org",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, filepath.Join(outDir, "haskell-mtl", "PKGBUILD"))
	require.FileExists(t, filepath.Join(outDir, "haskell-mtl", "haskell-mtl.install"))
}

func TestBatchCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	server := testutil.ServeIndex(t, testutil.FixturePages(t, map[string]string{
		"mtl":     "mtl.html",
		"network": "network.html",
	}))
	report := filepath.Join(t.TempDir(), "report.yaml")

	cmd := exec.Command("go", "run", "./cmd/hkgbuild", "batch",
		"--packages", "fixtures/packages.yaml",
		"--report", report,
		"--index-url", server.URL,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, report)
	assert.Contains(t, string(out), "dataenc: FAILED")
}
