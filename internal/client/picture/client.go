package picture

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Mikeoo31/cloud-atlas/internal/config"
	"github.com/Mikeoo31/cloud-atlas/internal/logger"
	http_transport "github.com/Mikeoo31/cloud-atlas/internal/transport/http"
)

// Client fetches remote pictures.
type Client interface {
	// DownloadFromURL opens a GET request for the picture.
	DownloadFromURL(ctx context.Context, url string) (*FetchResult, error)
	// Probe returns the picture's metadata without downloading it.
	Probe(ctx context.Context, url string) (*ResourceInfo, error)
}

// ClientImpl implements Client over net/http.
type ClientImpl struct {
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// probeCache remembers probe results by requested URL.
	probeCache *lru.Cache[string, *ResourceInfo]
}

// NewClient creates a client using the transport chain, timeout and cache size from cfg.
func NewClient(cfg *config.Config) (Client, error) {
	httpClient := &http.Client{
		Transport: http_transport.New(cfg.UserAgent, cfg.MaxLogLength),
		Timeout:   cfg.ParsedRequestTimeout,
	}

	return NewClientWithHTTP(httpClient, cfg.ProbeCacheSize)
}

// NewClientWithHTTP creates a client over an existing http.Client.
func NewClientWithHTTP(httpClient *http.Client, probeCacheSize int) (Client, error) {
	if probeCacheSize <= 0 {
		probeCacheSize = config.DefaultProbeCacheSize
	}

	probeCache, err := lru.New[string, *ResourceInfo](probeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create probe cache: %w", err)
	}

	return &ClientImpl{
		httpClient: httpClient,
		probeCache: probeCache,
	}, nil
}

// DownloadFromURL opens a GET request for the picture.
func (c *ClientImpl) DownloadFromURL(ctx context.Context, url string) (*FetchResult, error) {
	response, err := c.do(ctx, http.MethodGet, url)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return &FetchResult{
		Body:        response.Body,
		TotalBytes:  response.ContentLength,
		ContentType: response.Header.Get("Content-Type"),
	}, nil
}

// Probe returns the picture's metadata without downloading it.
// Servers rejecting HEAD are asked with GET, whose body is discarded unread.
// Successful results are cached.
func (c *ClientImpl) Probe(ctx context.Context, url string) (*ResourceInfo, error) {
	if info, ok := c.probeCache.Get(url); ok {
		logger.Debugf(ctx, "Probe cache hit for '%s'", url)

		return info, nil
	}

	response, err := c.do(ctx, http.MethodHead, url)
	if err != nil {
		return nil, err
	}

	if response.StatusCode == http.StatusMethodNotAllowed || response.StatusCode == http.StatusNotImplemented {
		response.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

		response, err = c.do(ctx, http.MethodGet, url)
		if err != nil {
			return nil, err
		}
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	info := &ResourceInfo{
		URL:           response.Request.URL.String(),
		ContentLength: response.ContentLength,
		ContentType:   response.Header.Get("Content-Type"),
	}

	c.probeCache.Add(url, info)

	return info, nil
}

func (c *ClientImpl) do(ctx context.Context, method, url string) (*http.Response, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyURL
	}

	request, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	return c.httpClient.Do(request)
}
