package httpkit

import (
	"net/http"

	pnet "linguaforge/internal/platform/net"
)

// Anonymous names callers when no API keys are configured
const Anonymous = "anonymous"

// Client returns the API client resolved by the auth middleware
func Client(r *http.Request) string {
	if c := pnet.Client(r.Context()); c != "" {
		return c
	}
	return Anonymous
}

// RequestID returns the request id stamped by the request id middleware
func RequestID(r *http.Request) string {
	return pnet.RequestID(r.Context())
}
