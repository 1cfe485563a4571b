package http

const (
	// userAgentHeader is the HTTP header name for User-Agent.
	userAgentHeader = "User-Agent"

	// truncatedSuffix marks a dump cut at the configured length.
	truncatedSuffix = "... [truncated]"
)
