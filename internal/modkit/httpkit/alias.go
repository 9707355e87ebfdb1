// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "linguaforge/internal/platform/net/http"
	"linguaforge/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router

	// BodyOptions controls request body parsing
	BodyOptions = bind.JSONOptions
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// JSON decodes and validates a T body with default limits, then calls fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return JSONWith(BodyOptions{MaxBytes: bind.DefaultMaxBytes, DisallowUnknown: true}, fn)
}

// JSONWith is JSON with explicit body options
// a zero MaxBytes falls back to the default cap
func JSONWith[T any](o BodyOptions, fn func(*http.Request, T) (any, error)) Handler {
	if o.MaxBytes <= 0 {
		o.MaxBytes = bind.DefaultMaxBytes
	}
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, o)
		if err != nil {
			return phttp.Error(err)
		}
		return wrap(fn(r, in))
	})
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		return wrap(fn(r))
	})
}

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

func wrap(out any, err error) Response {
	if err != nil {
		return phttp.Error(err)
	}
	if resp, ok := out.(phttp.Response); ok {
		return resp
	}
	return phttp.OK(out)
}
