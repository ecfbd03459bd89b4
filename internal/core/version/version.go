// Package version reports build metadata stamped at link time
package version

import "fmt"

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for service
// version, commit and date are set with
// -ldflags "-X creditclear/internal/core/version.version=v0.1.0 -X creditclear/internal/core/version.commit=abcd"
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// String renders a one line banner for cli output and logs
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (%s, %s)", b.Service, b.Version, b.Commit, b.Date)
}

// Service is the default service name reported by Info
var Service = "creditclear-api"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
