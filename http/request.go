package http

import (
	"github.com/Ghenzhiyiya/Just-A-Server/http/headers"
)

// Request represents an HTTP request. It's built once per connection and must be
// treated as read-only afterwards.
type Request struct {
	// Method is the request method token, exactly as the client sent it.
	Method string
	// Path is the raw request target. It's neither decoded nor normalized, so it may
	// contain a query string or traversal segments.
	Path string
	// Version is the protocol token, e.g. HTTP/1.1. It isn't validated.
	Version string
	// Headers holds lower-cased header names. Duplicate names keep the last value.
	Headers headers.Headers
}

func NewRequest(method, path, version string, hdrs headers.Headers) *Request {
	if hdrs == nil {
		hdrs = headers.New()
	}

	return &Request{
		Method:  method,
		Path:    path,
		Version: version,
		Headers: hdrs,
	}
}
