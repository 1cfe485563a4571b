package picture

import "errors"

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrEmptyURL indicates that no URL was given.
	ErrEmptyURL = errors.New("picture URL cannot be empty")
)
