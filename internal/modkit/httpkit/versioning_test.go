package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "linguaforge/internal/platform/net/http"
)

func TestMountAPI_Prefixes(t *testing.T) {
	cases := []struct {
		version string
		want    string
	}{
		{"v1", "/api/v1"},
		{"/v2", "/api/v2"},
	}
	for _, c := range cases {
		t.Run(c.version, func(t *testing.T) {
			root := &fakeRouter{}
			hits := 0
			MountAPI(root, c.version, nil, func(Router) { hits++ })
			if hits != 1 {
				t.Fatalf("mount called %d times", hits)
			}
			if len(root.prefixes) != 1 || root.prefixes[0] != c.want {
				t.Fatalf("prefixes = %v, want [%s]", root.prefixes, c.want)
			}
			if root.useCalls != 0 {
				t.Fatalf("Use called without middleware")
			}
		})
	}
}

func TestMountAPIV1_ServesUnderPrefix(t *testing.T) {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)

	tagged := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Scope", "v1")
			next.ServeHTTP(w, req)
		})
	}

	MountAPIV1(r, []func(http.Handler) http.Handler{tagged}, func(api Router) {
		Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Scope") != "v1" {
		t.Fatalf("scope middleware not applied")
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unversioned path should 404, got %d", rec.Code)
	}
}
