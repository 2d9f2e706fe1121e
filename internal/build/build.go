// Package build provides build-time information about the fwversion binary
// itself. Values are filled in via ldflags; the version falls back to the
// embedded VERSION file.
package build

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Overridable via ldflags:
//
//	-X github.com/tacogips/fwversion/internal/build.version=x.y.z
//	-X github.com/tacogips/fwversion/internal/build.gitCommit=abc1234
//	-X github.com/tacogips/fwversion/internal/build.buildDate=2026-01-02
var (
	version   string
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Version returns the application version.
// Priority: ldflags > embedded VERSION file
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}

// GitCommit returns the commit the binary was built from.
func GitCommit() string {
	return gitCommit
}

// BuildDate returns the date the binary was built.
func BuildDate() string {
	return buildDate
}
