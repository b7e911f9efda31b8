// Package build provides version and build information for croissant.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// AppName is the canonical binary name used in version output.
const AppName = "croissant"
