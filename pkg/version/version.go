// Package version carries build metadata injected via -ldflags.
package version

// Set at build time with:
//
//	-ldflags "-X github.com/astra-gui/astraloc/pkg/version.Version=v1.2.3 ..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
