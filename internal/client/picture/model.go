package picture

import "io"

// FetchResult is an open picture download.
// The caller owns Body and must close it.
type FetchResult struct {
	// Body streams the picture bytes.
	Body io.ReadCloser
	// TotalBytes is the announced length, or -1 when unknown.
	TotalBytes int64
	// ContentType is the Content-Type response header.
	ContentType string
}

// ResourceInfo describes a remote picture without its bytes.
type ResourceInfo struct {
	// URL is the final URL after redirects.
	URL string
	// ContentLength is the announced length, or -1 when unknown.
	ContentLength int64
	// ContentType is the Content-Type response header.
	ContentType string
}
