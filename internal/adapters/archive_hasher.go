package adapters

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"io"

	"github.com/rs/zerolog/log"

	"hkgbuild/internal/ports"
	"hkgbuild/internal/shared"
)

// ArchiveHasherAdapter downloads a source archive and digests it on the
// fly; the archive never touches the disk.
type ArchiveHasherAdapter struct {
	Client HTTPClient
}

func NewArchiveHasherAdapter(client HTTPClient) ArchiveHasherAdapter {
	return ArchiveHasherAdapter{Client: client}
}

func (a ArchiveHasherAdapter) Hash(ctx context.Context, url string) (string, error) {
	client := a.Client
	if client == nil {
		client = NewHTTPClient(0, "")
	}
	log.Debug().Str("url", url).Msg("downloading source archive")
	body, err := doGet(ctx, client, url)
	if err != nil {
		return "", err
	}
	defer body.Close()
	hasher := sha512.New()
	size, err := io.Copy(hasher, body)
	if err != nil {
		return "", shared.NetworkError(url, err)
	}
	sum := hex.EncodeToString(hasher.Sum(nil))
	log.Debug().Str("url", url).Int64("bytes", size).Msg("hashed source archive")
	return sum, nil
}

var _ ports.ArchiveHasherPort = ArchiveHasherAdapter{}
