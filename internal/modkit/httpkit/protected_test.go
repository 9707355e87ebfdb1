package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "linguaforge/internal/platform/net/http"
	"linguaforge/internal/platform/net/middleware"
)

func TestProtected_NilPortLeavesGroupOpen(t *testing.T) {
	root := &fakeRouter{}
	Protected(root, nil, func(gr Router) {
		gr.Get("/open", Call(func(*http.Request) (any, error) { return nil, nil }))
	})
	if root.groups != 1 {
		t.Fatalf("expected one group, got %d", root.groups)
	}
	if root.useCalls != 0 {
		t.Fatalf("nil port must not install auth, Use called %d times", root.useCalls)
	}
	if len(root.calls) != 1 {
		t.Fatalf("expected route registration, got %+v", root.calls)
	}
}

func TestProtected_APIKeys(t *testing.T) {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)

	keys := middleware.NewAPIKeys([]string{"cli:s3cret"})
	Protected(r, keys, func(gr Router) {
		Get(gr, "/who", func(req *http.Request) (any, error) { return Client(req), nil })
	})

	cases := []struct {
		name     string
		header   string
		value    string
		wantCode int
		wantBody string
	}{
		{"no key", "", "", http.StatusUnauthorized, "missing API key"},
		{"bad key", middleware.APIKeyHeader, "nope", http.StatusUnauthorized, ""},
		{"header key", middleware.APIKeyHeader, "s3cret", http.StatusOK, `"data":"cli"`},
		{"bearer key", "Authorization", "Bearer s3cret", http.StatusOK, `"data":"cli"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			if c.header != "" {
				req.Header.Set(c.header, c.value)
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			if rec.Code != c.wantCode {
				t.Fatalf("status = %d, want %d body=%s", rec.Code, c.wantCode, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), c.wantBody) {
				t.Fatalf("body %s missing %s", rec.Body.String(), c.wantBody)
			}
		})
	}
}
