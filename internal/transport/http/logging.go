package http

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/Mikeoo31/cloud-atlas/internal/logger"
	"github.com/Mikeoo31/cloud-atlas/internal/utils"
)

// defaultMaxLogLength applies when the caller passes zero.
const defaultMaxLogLength = 64 * 1024

// ErrNilRequest indicates that the HTTP request is nil.
var ErrNilRequest = errors.New("request is nil")

// LoggingTransport dumps requests and responses at debug level.
// Response bodies are dumped only for text content types, so picture bytes never reach the log.
type LoggingTransport struct {
	next         http.RoundTripper
	maxLogLength uint64
}

// NewLoggingTransport wraps next. A nil next means http.DefaultTransport.
func NewLoggingTransport(next http.RoundTripper, maxLogLength uint64) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	if maxLogLength == 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &LoggingTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()
	requestDump := t.dump(httputil.DumpRequestOut(req, utils.IsTextContentType(req.Header.Get("Content-Type"))))
	startedAt := time.Now()

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		logger.Debugf(ctx, "%s %s failed after %s: %v", req.Method, req.URL.Redacted(), time.Since(startedAt), err)

		return nil, err
	}

	responseDump := t.dump(httputil.DumpResponse(resp, utils.IsTextContentType(resp.Header.Get("Content-Type"))))

	logger.DebugKV(ctx, "HTTP exchange",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"duration", time.Since(startedAt),
		"request", requestDump,
		"response", responseDump)

	return resp, nil
}

func (t *LoggingTransport) dump(data []byte, err error) string {
	if err != nil {
		return err.Error()
	}

	if uint64(len(data)) > t.maxLogLength {
		return string(data[:t.maxLogLength]) + truncatedSuffix
	}

	return string(data)
}
