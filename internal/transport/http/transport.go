package http

import "net/http"

// New returns the round-tripper chain used for picture downloads:
// User-Agent injection on top of debug logging on top of http.DefaultTransport.
func New(userAgent string, maxLogLength uint64) http.RoundTripper {
	return NewUserAgentTransport(
		NewLoggingTransport(http.DefaultTransport, maxLogLength),
		userAgent)
}
