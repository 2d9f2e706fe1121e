package config

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	envNamePattern    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// maxHashLength is the length of a full SHA-1 commit hash.
const maxHashLength = 40

// Validate validates a configuration.
func Validate(config *Config) error {
	return validate(config)
}

func validate(config *Config) error {
	if config == nil {
		return newFieldError("", "configuration cannot be nil")
	}

	if strings.TrimSpace(config.Version.File) == "" {
		return newFieldError("version.file", "version file path is required")
	}
	if strings.TrimSpace(config.Version.Default) == "" {
		return newFieldError("version.default", "default version is required")
	}

	if config.SCM.ShortHashLength < 1 || config.SCM.ShortHashLength > maxHashLength {
		return newFieldError("scm.short_hash_length",
			fmt.Sprintf("must be between 1 and %d, got %d", maxHashLength, config.SCM.ShortHashLength))
	}
	if config.SCM.Timeout < 0 {
		return newFieldError("scm.timeout", "timeout cannot be negative")
	}

	if strings.TrimSpace(config.Header.Output) == "" {
		return newFieldError("header.output", "header output path is required")
	}
	if err := ValidateStyle(config.Header.Style); err != nil {
		return newFieldError("header.style", err.Error())
	}
	if !identifierPattern.MatchString(config.Header.Guard) {
		return newFieldError("header.guard",
			fmt.Sprintf("%q is not a valid C identifier", config.Header.Guard))
	}

	if strings.ContainsAny(config.Zephyr.FileName, `/\`) {
		return newFieldError("zephyr.file_name", "file name must not contain path separators")
	}

	for i, name := range config.CI.Variables {
		if !envNamePattern.MatchString(name) {
			return newFieldError(fmt.Sprintf("ci.variables[%d]", i),
				fmt.Sprintf("%q is not a valid environment variable name", name))
		}
	}

	return nil
}

// ValidateStyle checks a header style name.
func ValidateStyle(style string) error {
	switch style {
	case StyleBasic, StyleExtended:
		return nil
	default:
		return fmt.Errorf("unknown header style %q (must be %s or %s)", style, StyleBasic, StyleExtended)
	}
}
