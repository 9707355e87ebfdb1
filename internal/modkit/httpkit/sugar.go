package httpkit

import (
	"net/http"
)

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post registers a no-body handler and uses the envelope adapter
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}

// PostJSON mounts a validated JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// PostJSONWith is PostJSON with explicit body options
func PostJSONWith[T any](r Router, path string, o BodyOptions, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSONWith(o, h))
}
