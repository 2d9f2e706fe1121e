package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Settings are process-level options read from the environment.
type Settings struct {
	// ConfigPath overrides the configuration file location.
	ConfigPath string `env:"FWVERSION_CONFIG" envDefault:".fwversion.json"`
	// Debug enables debug logging.
	Debug bool `env:"FWVERSION_DEBUG" envDefault:"false"`
	// NoColor follows the no-color.org convention: any non-empty value.
	NoColor string `env:"NO_COLOR"`
}

// ColorDisabled reports whether NO_COLOR was set.
func (s Settings) ColorDisabled() bool {
	return s.NoColor != ""
}

// LoadSettings decodes Settings from the given environment. A nil map reads
// the process environment.
func LoadSettings(environ map[string]string) (*Settings, error) {
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}
	s := &Settings{}
	if err := env.ParseWithOptions(s, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parsing environment settings: %w", err)
	}
	return s, nil
}
