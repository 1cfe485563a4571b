// Package http provides http.RoundTripper decorators used by the picture client:
// debug logging of requests and responses and User-Agent injection.
package http
