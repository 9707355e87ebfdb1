package httpkit

import (
	"linguaforge/internal/platform/net/middleware"
)

// Protected groups routes behind the API key check
// a nil port, or an empty key set, leaves the group open
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		if p != nil {
			gr.Use(Auth(p))
		}
		fn(gr)
	})
}
