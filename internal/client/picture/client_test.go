package picture

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mikeoo31/cloud-atlas/internal/config"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake-picture-bytes")

func newTestClient(t *testing.T) Client {
	t.Helper()

	cfg := &config.Config{
		UserAgent:      "CloudAtlasTest/1.0",
		MaxLogLength:   1024,
		ProbeCacheSize: 8,
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)

	return client
}

func pictureHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/cat.png":
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	case "/no-head.png":
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)

			return
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	case "/moved.png":
		http.Redirect(w, r, "/cat.png", http.StatusFound)
	default:
		http.NotFound(w, r)
	}
}

// TestClient_DownloadFromURL tests downloading a picture.
func TestClient_DownloadFromURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(pictureHandler))
	defer server.Close()

	result, err := newTestClient(t).DownloadFromURL(context.Background(), server.URL+"/cat.png")
	require.NoError(t, err)

	defer result.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

	body, err := io.ReadAll(result.Body)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, body)
	assert.Equal(t, int64(len(pngBytes)), result.TotalBytes)
	assert.Equal(t, "image/png", result.ContentType)
}

// TestClient_DownloadFromURL_Errors tests download failures.
func TestClient_DownloadFromURL_Errors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(pictureHandler))
	defer server.Close()

	client := newTestClient(t)

	_, err := client.DownloadFromURL(context.Background(), server.URL+"/missing.png")
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
	assert.Contains(t, err.Error(), "404")

	_, err = client.DownloadFromURL(context.Background(), "  ")
	require.ErrorIs(t, err, ErrEmptyURL)

	_, err = client.DownloadFromURL(context.Background(), "http://[::1")
	require.Error(t, err)
}

// TestClient_Probe tests probing with HEAD and the GET fallback.
func TestClient_Probe(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(pictureHandler))
	defer server.Close()

	client := newTestClient(t)

	for _, path := range []string{"/cat.png", "/no-head.png"} {
		info, err := client.Probe(context.Background(), server.URL+path)
		require.NoError(t, err, path)
		assert.Equal(t, int64(len(pngBytes)), info.ContentLength, path)
		assert.Equal(t, "image/png", info.ContentType, path)
	}

	info, err := client.Probe(context.Background(), server.URL+"/moved.png")
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/cat.png", info.URL)

	_, err = client.Probe(context.Background(), server.URL+"/missing.png")
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
}

// TestClient_ProbeIsCached tests that repeated probes hit the cache.
func TestClient_ProbeIsCached(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		pictureHandler(w, r)
	}))
	defer server.Close()

	client := newTestClient(t)

	first, err := client.Probe(context.Background(), server.URL+"/cat.png")
	require.NoError(t, err)

	second, err := client.Probe(context.Background(), server.URL+"/cat.png")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), hits.Load())

	// Failures are not cached.
	for range 2 {
		_, err = client.Probe(context.Background(), server.URL+"/missing.png")
		require.Error(t, err)
	}

	assert.Equal(t, int64(3), hits.Load())
}
