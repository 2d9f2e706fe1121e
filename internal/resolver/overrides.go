package resolver

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Overrides are the environment variables that take precedence over files
// and source control. GitVersion names are honored so CI pipelines that run
// GitVersion need no extra wiring.
type Overrides struct {
	// FullSemVer is a complete version used verbatim.
	FullSemVer string `env:"GITVERSION_FULLSEMVER"`
	// Version is a complete version used verbatim when FullSemVer is unset.
	Version string `env:"VERSION"`
	// BaseVersion replaces the version file content.
	BaseVersion string `env:"FWVERSION_BASE_VERSION"`
	// Branch replaces the git branch lookup.
	Branch string `env:"GITVERSION_ESCAPEDBRANCHNAME"`
	// ShortSHA replaces the git commit lookup.
	ShortSHA string `env:"GITVERSION_SHORTSHA"`
	// BuildDate is the preferred build timestamp.
	BuildDate string `env:"GITVERSION_BUILDDATE"`
	// BuildTimestamp is used when BuildDate is unset.
	BuildTimestamp string `env:"BUILD_TIMESTAMP"`
}

// ParseOverrides decodes Overrides from an environment map.
func ParseOverrides(environ map[string]string) (Overrides, error) {
	var o Overrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return Overrides{}, fmt.Errorf("parsing version overrides: %w", err)
	}
	return o, nil
}

// FullVersion returns the complete version override, if any.
func (o Overrides) FullVersion() string {
	if o.FullSemVer != "" {
		return o.FullSemVer
	}
	return o.Version
}

// Timestamp returns the build timestamp override, if any.
func (o Overrides) Timestamp() string {
	if o.BuildDate != "" {
		return o.BuildDate
	}
	return o.BuildTimestamp
}

func environMap() map[string]string {
	return env.ToMap(os.Environ())
}
