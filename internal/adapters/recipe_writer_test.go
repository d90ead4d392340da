package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hkgbuild/internal/types"
)

func samplePackageInfo() types.PackageInfo {
	return types.PackageInfo{
		Date:            "2026-10-18",
		Repository:      "Apps",
		MaintainerName:  "Jane Doe",
		MaintainerAlias: "jd",
		MaintainerEmail: "jd@example.org",
		IndexName:       "mtl",
		IndexURL:        "http://hackage.haskell.org",
		PkgName:         "haskell-mtl",
		PkgVer:          "2.1.2",
		PkgRel:          "4",
		PkgDesc:         "Monad classes, using functional dependencies",
		Arch:            string(types.ArchitectureBoth),
		License:         "BSD3",
		Depends:         "'ghc=7.6.3-1' 'haskell-base<6' 'haskell-transformers>=0.3.0'",
		Options:         "'staticlibs'",
		Checksum:        "abc123",
	}
}

func TestRecipeWriterRender(t *testing.T) {
	pkgbuild, install, err := NewRecipeWriterAdapter().Render(samplePackageInfo())
	require.NoError(t, err)

	assert.Contains(t, pkgbuild, "# Apps Packages for Chakra, part of www.chakra-project.org\n")
	assert.Contains(t, pkgbuild, "# Maintainer: Jane Doe (jd) <jd@example.org>\n")
	assert.Contains(t, pkgbuild, "_hkgname=mtl\npkgname=haskell-mtl\npkgver=2.1.2\npkgrel=4\n")
	assert.Contains(t, pkgbuild, "pkgdesc=\"Monad classes, using functional dependencies\"\n")
	assert.Contains(t, pkgbuild, "license=('BSD3')\narch=('x86_64' 'i686')\nmakedepends=()\n")
	assert.Contains(t, pkgbuild, "depends=('ghc=7.6.3-1' 'haskell-base<6' 'haskell-transformers>=0.3.0')\noptions=('staticlibs')\n")
	assert.Contains(t, pkgbuild, "source=(\"http://hackage.haskell.org/packages/archive/\\\nmtl/2.1.2/mtl-2.1.2.tar.gz\")\n")
	assert.Contains(t, pkgbuild, "sha512sums=('abc123')\n")
	assert.Contains(t, pkgbuild, `cd "${srcdir}/mtl-2.1.2"`)
	assert.Contains(t, pkgbuild, `"${pkgdir}/usr/share/haskell/haskell-mtl/register.sh"`)
	assert.NotContains(t, pkgbuild, "groups=")
	assert.NotContains(t, pkgbuild, "optdepends=")

	assert.Contains(t, install, "HS_DIR=usr/share/haskell/haskell-mtl\n")
	assert.Contains(t, install, "post_install() {\n  ${HS_DIR}/register.sh\n")
}

func TestRecipeWriterRendersOptionalArrays(t *testing.T) {
	info := samplePackageInfo()
	info.Groups = "'haskell'"
	info.Replaces = "'mtl'"
	pkgbuild, _, err := NewRecipeWriterAdapter().Render(info)
	require.NoError(t, err)
	assert.Contains(t, pkgbuild, "arch=('x86_64' 'i686')\ngroups=('haskell')\nmakedepends=()\n")
	assert.Contains(t, pkgbuild, "replaces=('mtl')\noptions=('staticlibs')\n")
}

func TestRecipeWriterWriteRoundTripsThroughReader(t *testing.T) {
	dir := t.TempDir()
	info := samplePackageInfo()
	written, err := NewRecipeWriterAdapter().Write(dir, info)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "haskell-mtl"), written.Dir)
	assert.Equal(t, filepath.Join(dir, "haskell-mtl", "PKGBUILD"), written.PKGBUILDPath)
	assert.Equal(t, filepath.Join(dir, "haskell-mtl", "haskell-mtl.install"), written.InstallPath)
	_, err = os.Stat(written.InstallPath)
	require.NoError(t, err)

	record, err := NewRecipeReaderAdapter().Read(written.PKGBUILDPath)
	require.NoError(t, err)
	assert.Equal(t, info.PkgVer, record["pkgver"])
	assert.Equal(t, info.PkgRel, record["pkgrel"])
	assert.Equal(t, info.PkgDesc, record["pkgdesc"])
	assert.Equal(t, info.Depends, record["depends"])
	assert.Equal(t, info.Options, record["options"])
}

func TestRecipeWriterRequiresPackageName(t *testing.T) {
	info := samplePackageInfo()
	info.PkgName = ""
	_, err := NewRecipeWriterAdapter().Write(t.TempDir(), info)
	require.Error(t, err)
}
