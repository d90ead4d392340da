package adapters

import (
	"context"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"hkgbuild/internal/ports"
	"hkgbuild/internal/shared"
	"hkgbuild/internal/types"
)

var errInvalidUTF8 = errors.New("body is not valid UTF-8")

// PageFetcherAdapter retrieves index pages over HTTP. Every call performs
// a request; nothing is cached or retried.
type PageFetcherAdapter struct {
	Client HTTPClient
}

func NewPageFetcherAdapter(client HTTPClient) PageFetcherAdapter {
	return PageFetcherAdapter{Client: client}
}

func (a PageFetcherAdapter) Fetch(ctx context.Context, url string) (types.IndexDocument, error) {
	client := a.Client
	if client == nil {
		client = NewHTTPClient(0, "")
	}
	log.Debug().Str("url", url).Msg("fetching index page")
	body, err := doGet(ctx, client, url)
	if err != nil {
		return types.IndexDocument{}, err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return types.IndexDocument{}, shared.NetworkError(url, err)
	}
	if !utf8.Valid(data) {
		return types.IndexDocument{}, shared.EncodingError(url, errInvalidUTF8)
	}
	log.Debug().Str("url", url).Int("bytes", len(data)).Msg("fetched index page")
	return types.IndexDocument{URL: url, Content: string(data)}, nil
}

var _ ports.PageFetcherPort = PageFetcherAdapter{}
