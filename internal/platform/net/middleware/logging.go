package middleware

import (
	"net"
	"net/http"

	"linguaforge/internal/platform/logger"
	pnet "linguaforge/internal/platform/net"
)

// LogContext copies the request id and the calling client into the logger
// context so logger.C picks them up downstream. Mount after RequestID and Auth
func LogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		client := pnet.Client(ctx)
		if client == "" {
			client = remoteHost(r.RemoteAddr)
		}
		ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), client)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func remoteHost(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
