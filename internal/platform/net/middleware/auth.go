package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	perr "linguaforge/internal/platform/errors"
	pnet "linguaforge/internal/platform/net"
)

// AuthPort resolves the calling client from a request
type AuthPort interface {
	// Parse returns a client id for the request or an error
	Parse(r *http.Request) (client string, err error)
}

// Auth rejects requests the port cannot identify. A nil port disables auth
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			client, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				w.Header().Set("WWW-Authenticate", `Bearer realm="linguaforge"`)
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithClient(r.Context(), client)))
		})
	}
}

// APIKeyHeader carries a key when the Authorization header is not used
const APIKeyHeader = "X-API-Key"

type apiKey struct {
	id     string
	secret []byte
}

// APIKeys is a static key set. Entries are "id:secret" or a bare secret,
// which gets the id "key-N" (1-based position)
type APIKeys struct {
	keys []apiKey
}

// NewAPIKeys parses entries; blanks are skipped. Returns nil when no keys
// remain so Auth stays disabled
func NewAPIKeys(entries []string) *APIKeys {
	var keys []apiKey
	for i, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		id, secret, ok := strings.Cut(e, ":")
		if !ok {
			id, secret = fmt.Sprintf("key-%d", i+1), e
		}
		if secret == "" {
			continue
		}
		keys = append(keys, apiKey{id: id, secret: []byte(secret)})
	}
	if len(keys) == 0 {
		return nil
	}
	return &APIKeys{keys: keys}
}

// Len returns the number of configured keys
func (k *APIKeys) Len() int {
	if k == nil {
		return 0
	}
	return len(k.keys)
}

// Parse accepts "Authorization: Bearer <key>" or "X-API-Key: <key>". A nil
// set accepts everything anonymously
func (k *APIKeys) Parse(r *http.Request) (string, error) {
	if k == nil {
		return "", nil
	}
	presented := strings.TrimSpace(r.Header.Get(APIKeyHeader))
	if presented == "" {
		if h := r.Header.Get("Authorization"); len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
			presented = strings.TrimSpace(h[7:])
		}
	}
	if presented == "" {
		return "", perr.Unauthorizedf("missing API key")
	}
	p := []byte(presented)
	match := ""
	// compare against every key so timing does not reveal the position
	for _, key := range k.keys {
		if subtle.ConstantTimeCompare(p, key.secret) == 1 && match == "" {
			match = key.id
		}
	}
	if match == "" {
		return "", perr.Unauthorizedf("invalid API key")
	}
	return match, nil
}
