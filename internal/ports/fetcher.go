package ports

import (
	"context"

	"hkgbuild/internal/types"
)

// PageFetcherPort retrieves and decodes one index page. Implementations do
// not retry and do not cache.
type PageFetcherPort interface {
	Fetch(ctx context.Context, url string) (types.IndexDocument, error)
}

// ArchiveHasherPort downloads a source archive and returns its hex digest.
type ArchiveHasherPort interface {
	Hash(ctx context.Context, url string) (string, error)
}
