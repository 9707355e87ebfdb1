// Package version reports build metadata for the CLI and the API
package version

import "fmt"

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// String renders a one line summary
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", b.Service, b.Version, b.Commit, b.Date)
}

// Info returns the build information for service. The version, commit and date
// variables are set at build time:
//
//	-ldflags "-X 'linguaforge/internal/core/version.version=v0.1.0'
//	  -X 'linguaforge/internal/core/version.commit=abcd' -X 'linguaforge/internal/core/version.date=2026-01-02'"
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
