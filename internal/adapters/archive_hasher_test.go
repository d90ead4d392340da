package adapters

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hkgbuild/internal/shared"
)

func TestArchiveHasherDigestsBody(t *testing.T) {
	archive := []byte("not really a tarball")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	}))
	defer server.Close()

	sum, err := NewArchiveHasherAdapter(NewHTTPClient(5, "")).Hash(context.Background(), server.URL+"/mtl-2.1.2.tar.gz")
	require.NoError(t, err)
	want := sha512.Sum512(archive)
	assert.Equal(t, hex.EncodeToString(want[:]), sum)
	assert.Len(t, sum, 128)
}

func TestArchiveHasherMissingArchiveIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := NewArchiveHasherAdapter(NewHTTPClient(5, "")).Hash(context.Background(), server.URL)
	require.Error(t, err)
	assert.True(t, shared.IsNetworkError(err), "got %v", err)
}
