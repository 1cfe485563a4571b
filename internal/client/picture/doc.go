// Package picture provides an HTTP client for fetching remote pictures.
// It streams bodies for saving and probes resources with HEAD requests,
// remembering probe results in an LRU cache.
package picture
