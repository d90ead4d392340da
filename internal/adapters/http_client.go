package adapters

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"hkgbuild/internal/shared"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "hkgbuild"
)

// HTTPClient is the part of *http.Client the index adapters use.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

var _ HTTPClient = http.DefaultClient

type userAgentClient struct {
	HTTPClient
	userAgent string
}

func (c userAgentClient) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)
	return c.HTTPClient.Do(req)
}

// NewHTTPClient returns a client that times out after timeoutSec seconds
// and identifies itself with userAgent. Non-positive timeouts and empty
// agents fall back to the defaults.
func NewHTTPClient(timeoutSec int, userAgent string) HTTPClient {
	timeout := defaultHTTPTimeout
	if timeoutSec > 0 {
		timeout = time.Duration(timeoutSec) * time.Second
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = defaultUserAgent
	}
	return userAgentClient{
		HTTPClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// doGet issues one GET and returns the body of a 2xx response. Anything
// else, including a cancelled context, is a network error.
func doGet(ctx context.Context, client HTTPClient, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to create request").
			WithCause(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, shared.NetworkError(url, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, shared.NetworkError(url, shared.HTTPStatusError(resp.StatusCode, url))
	}
	return resp.Body, nil
}
