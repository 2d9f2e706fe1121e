// Package semver decomposes firmware version strings of the form
// MAJOR.MINOR.PATCH[+TWEAK] and packs them into the numeric constants the
// firmware headers expect.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxComponent is the largest value a packed component may hold.
const MaxComponent = 255

// DefaultTweak is used when a version carries no tweak segment.
const DefaultTweak = "0"

// Version is a parsed MAJOR.MINOR.PATCH[+TWEAK] value.
type Version struct {
	Major int
	Minor int
	Patch int
	// Tweak is everything after the first '+', kept opaque.
	Tweak string
}

// Parse splits a version string into its components.
//
// The core before the first '+' is split on '.'; missing major, minor or
// patch components default to 0 and extra components are ignored. A missing
// or empty tweak defaults to "0". Present components must be base-10
// integers in the range 0-255.
func Parse(s string) (Version, error) {
	core, tweak, _ := strings.Cut(s, "+")
	if tweak == "" {
		tweak = DefaultTweak
	}

	v := Version{Tweak: tweak}
	parts := strings.Split(core, ".")
	targets := []struct {
		name string
		dst  *int
	}{
		{"major", &v.Major},
		{"minor", &v.Minor},
		{"patch", &v.Patch},
	}

	for i, target := range targets {
		if i >= len(parts) {
			break
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return Version{}, &ParseError{Type: NotNumeric, Input: s, Component: target.name, Cause: err}
		}
		if n < 0 || n > MaxComponent {
			return Version{}, &ParseError{Type: OutOfRange, Input: s, Component: target.name}
		}
		*target.dst = n
	}

	return v, nil
}

// Number packs major, minor and patch as (major << 16) | (minor << 8) | patch.
func (v Version) Number() int {
	return v.Major<<16 | v.Minor<<8 | v.Patch
}

// AppVersion packs major and minor only; the patch level is dropped.
func (v Version) AppVersion() int {
	return v.Major<<16 | v.Minor<<8
}

// Core returns MAJOR.MINOR.PATCH.
func (v Version) Core() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Extended returns MAJOR.MINOR.PATCH+TWEAK.
func (v Version) Extended() string {
	return v.Core() + "+" + v.Tweak
}

// TweakNumber returns the leading integer of the first dot-separated tweak
// identifier, or 0 when it does not start with a digit.
func (v Version) TweakNumber() int {
	return LeadingNumber(v.Tweak)
}

// LeadingNumber returns the integer formed by the leading digits of the first
// dot-separated identifier in s ("12abc.x" is 12), or 0 when there are none.
func LeadingNumber(s string) int {
	first, _, _ := strings.Cut(s, ".")
	end := 0
	for end < len(first) && first[end] >= '0' && first[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(first[:end])
	if err != nil {
		return 0
	}
	return n
}

// Hex renders n as a 5-digit zero-padded hexadecimal C literal.
func Hex(n int) string {
	return fmt.Sprintf("0x%05x", n)
}
