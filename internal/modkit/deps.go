// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"linguaforge/internal/platform/config"
	"linguaforge/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// the text engines are stateless and built by each module
type Deps struct {
	Log       logger.Logger
	Cfg       config.Conf
	StartedAt time.Time
}

// Named returns a copy whose logger carries the module component
func (d Deps) Named(component string) Deps {
	d.Log = d.Log.With().Str("component", component).Logger()
	return d
}

// Uptime reports how long the process has been serving
// a zero StartedAt yields zero
func (d Deps) Uptime(now time.Time) time.Duration {
	if d.StartedAt.IsZero() || now.Before(d.StartedAt) {
		return 0
	}
	return now.Sub(d.StartedAt)
}
