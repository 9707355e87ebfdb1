package middleware

import (
	"context"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader is read from callers and echoed on every response
const RequestIDHeader = "X-Request-ID"

// maxInboundID bounds caller supplied ids so logs stay sane
const maxInboundID = 128

var newID = func() string { return uuid.NewString() } // seam

// RequestID propagates a caller supplied X-Request-ID or mints a UUID, stores it
// where chimw.GetReqID finds it and mirrors it on the response
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if id == "" || len(id) > maxInboundID || strings.ContainsAny(id, "\r\n") {
				id = newID()
			}
			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), chimw.RequestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
