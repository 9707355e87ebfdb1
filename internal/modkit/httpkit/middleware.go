package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"linguaforge/internal/platform/logger"
	phttp "linguaforge/internal/platform/net/http"
	"linguaforge/internal/platform/net/http/bind"
	"linguaforge/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack, zero values pick the defaults
type StackOptions struct {
	CORSOrigins  []string
	MaxBodyBytes int64
	Timeout      time.Duration
	Slow         time.Duration
	Logger       *logger.Logger
}

func (o StackOptions) withDefaults() StackOptions {
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = bind.DefaultMaxBytes
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = time.Second
	}
	return o
}

// CommonStack returns the baseline middleware slice for the versioned API
// compose with Auth in main or per module as needed
func CommonStack(opts ...StackOptions) []func(http.Handler) http.Handler {
	var o StackOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	o = o.withDefaults()

	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.LogContext,

		// safety
		middleware.RecoverJSON,
		middleware.RequestSize(o.MaxBodyBytes),

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow, Logger: o.Logger}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
