package module

import (
	"testing"

	phttp "linguaforge/internal/platform/net/http"
)

// stubModule is a minimal test double that satisfies Module
type stubModule struct {
	name    string
	mounted *bool
	ports   any
}

func (s *stubModule) MountRoutes(_ phttp.Router) {
	if s.mounted != nil {
		*s.mounted = true
	}
}
func (s *stubModule) Ports() any   { return s.ports }
func (s *stubModule) Name() string { return s.name }

var _ Module = (*stubModule)(nil)

func TestModule_MountRoutes(t *testing.T) {
	called := false
	m := &stubModule{mounted: &called}

	var r phttp.Router
	m.MountRoutes(r)

	if !called {
		t.Fatalf("expected MountRoutes to be observable")
	}
}

func TestModule_Ports(t *testing.T) {
	type langPorts struct{ Count int }

	cases := []struct {
		name string
		in   any
	}{
		{"nil ports", nil},
		{"primitive ports", 123},
		{"struct ports", langPorts{Count: 92}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &stubModule{ports: tc.in}
			if got := m.Ports(); got != tc.in {
				t.Fatalf("Ports = %v, want %v", got, tc.in)
			}
		})
	}
}
