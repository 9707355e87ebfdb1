package version

import (
	"testing"

	kit "linguaforge/internal/platform/testkit"
)

func TestInfo_Defaults(t *testing.T) {
	bi := Info("linguaforge")
	if bi.Service != "linguaforge" || bi.Version != "dev" || bi.Commit != "none" || bi.Date != "unknown" {
		t.Fatalf("unexpected build info %+v", bi)
	}
}

func TestInfo_LinkerOverrides(t *testing.T) {
	kit.Swap(t, &version, "v1.2.3")
	kit.Swap(t, &commit, "abc123")
	got := Info("linguaforge-api").String()
	if got != "linguaforge-api v1.2.3 (commit abc123, built unknown)" {
		t.Fatalf("String() = %q", got)
	}
}
