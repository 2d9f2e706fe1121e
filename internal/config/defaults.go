package config

import "github.com/tacogips/fwversion/internal/scm"

// Built-in defaults.
const (
	DefaultConfigFile    = ".fwversion.json"
	DefaultVersionFile   = "firmware-pio/version.txt"
	DefaultBaseVersion   = "0.1.0"
	DefaultPackageJSON   = "firmware-pio/package.json"
	DefaultHeaderOutput  = "firmware-pio/include/app_version.h"
	DefaultGuard         = "APP_VERSION_H"
	DefaultDogfoodSuffix = ".dogfood"
	DefaultZephyrRoot    = "firmware"
	DefaultZephyrFile    = "VERSION"

	StyleBasic    = "basic"
	StyleExtended = "extended"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: VersionConfig{
			File:          DefaultVersionFile,
			Default:       DefaultBaseVersion,
			PackageJSON:   DefaultPackageJSON,
			DogfoodSuffix: DefaultDogfoodSuffix,
		},
		SCM: SCMConfig{
			Command:         "git",
			ShortHashLength: scm.DefaultShortHashLength,
			Timeout:         10,
		},
		Header: HeaderConfig{
			Output: DefaultHeaderOutput,
			Style:  StyleBasic,
			Guard:  DefaultGuard,
		},
		Zephyr: ZephyrConfig{
			Root:     DefaultZephyrRoot,
			FileName: DefaultZephyrFile,
		},
		CI: CIConfig{
			Variables: DefaultCIVariables(),
		},
	}
}

// DefaultCIVariables returns the environment variables that identify
// known CI systems.
func DefaultCIVariables() []string {
	return []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_HOME",
		"BUILD_ID",
	}
}
