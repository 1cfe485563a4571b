package http

import "net/http"

// UserAgentTransport sets a User-Agent header on requests that carry none.
type UserAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

// NewUserAgentTransport wraps next. A nil next means http.DefaultTransport.
func NewUserAgentTransport(next http.RoundTripper, userAgent string) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return &UserAgentTransport{
		next:      next,
		userAgent: userAgent,
	}
}

// RoundTrip implements http.RoundTripper.
// The caller's request is never modified, a clone gets the header.
func (t *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if t.userAgent == "" || req.Header.Get(userAgentHeader) != "" {
		return t.next.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set(userAgentHeader, t.userAgent)

	return t.next.RoundTrip(clone)
}
