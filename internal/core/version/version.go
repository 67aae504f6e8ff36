// Package version provides information about the build version of the service.
package version

import "runtime/debug"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'funhouse/internal/core/version.version=v0.1.0'
	// -X 'funhouse/internal/core/version.commit=abcd' -X 'funhouse/internal/core/version.date=2026-10-01'"
	bi := BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if b, ok := readBuildInfo(); ok && b != nil {
		bi.GoVersion = b.GoVersion
	}
	return bi
}

// Service is the name reported by meta endpoints and logs
const Service = "funhouse-api"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	readBuildInfo = debug.ReadBuildInfo
)
