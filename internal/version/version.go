// Package version holds build metadata injected at link time.
package version

// Set via ldflags by the release build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
