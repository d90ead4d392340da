package ports

import "hkgbuild/internal/types"

// RecipeReaderPort loads a previously generated recipe. A missing file
// yields an empty record.
type RecipeReaderPort interface {
	Read(path string) (types.PriorRecord, error)
}

type RecipeWriterPort interface {
	Render(info types.PackageInfo) (string, string, error)
	Write(dir string, info types.PackageInfo) (types.WrittenRecipe, error)
}
