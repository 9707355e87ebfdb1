package modkit

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"linguaforge/internal/platform/config"
)

func TestDeps_Named_TagsComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := Deps{Log: zerolog.New(&buf), Cfg: config.New()}

	n := d.Named("text")
	n.Log.Info().Msg("hello")

	if !strings.Contains(buf.String(), `"component":"text"`) {
		t.Fatalf("component missing from %q", buf.String())
	}

	buf.Reset()
	d.Log.Info().Msg("plain")
	if strings.Contains(buf.String(), "component") {
		t.Fatalf("Named must not mutate the original deps: %q", buf.String())
	}
}

func TestDeps_Uptime(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cases := []struct {
		name  string
		start time.Time
		now   time.Time
		want  time.Duration
	}{
		{"zero start", time.Time{}, start, 0},
		{"clock skew", start, start.Add(-time.Second), 0},
		{"running", start, start.Add(90 * time.Second), 90 * time.Second},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := Deps{StartedAt: c.start}
			if got := d.Uptime(c.now); got != c.want {
				t.Fatalf("Uptime = %v, want %v", got, c.want)
			}
		})
	}
}
