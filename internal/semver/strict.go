package semver

import (
	"fmt"
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"
)

// ParseStrict parses a full semantic version (MAJOR.MINOR.PATCH with
// optional -prerelease and +build parts) without the leniency of Parse.
func ParseStrict(s string) (*mmsemver.Version, error) {
	v, err := mmsemver.StrictNewVersion(s)
	if err != nil {
		return nil, &ParseError{Type: Malformed, Input: s, Cause: err}
	}
	return v, nil
}

// CheckByte verifies that n fits the 0-255 range used by firmware version
// fields. label names the field in the error.
func CheckByte(input, label string, n uint64) error {
	if n > MaxComponent {
		return &ParseError{Type: OutOfRange, Input: input, Component: label}
	}
	return nil
}

// Validate reports whether s is a strict semantic version.
func Validate(s string) error {
	if _, err := ParseStrict(s); err != nil {
		return fmt.Errorf("%q is not a semantic version (expected e.g. 1.0.0): %w", s, err)
	}
	return nil
}

// Normalize parses a loosely written version such as "v1.2.3" or "1.2.3+7"
// and returns MAJOR.MINOR.PATCH[-PRERELEASE] without build metadata.
func Normalize(s string) (string, error) {
	v, err := mmsemver.NewVersion(strings.TrimSpace(s))
	if err != nil {
		return "", &ParseError{Type: Malformed, Input: s, Cause: err}
	}
	out := fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
	if pre := v.Prerelease(); pre != "" {
		out += "-" + pre
	}
	return out, nil
}
