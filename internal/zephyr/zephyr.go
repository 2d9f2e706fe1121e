// Package zephyr builds the VERSION file read by the Zephyr build system
// (VERSION_MAJOR, VERSION_MINOR, PATCHLEVEL, VERSION_TWEAK, EXTRAVERSION).
package zephyr

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tacogips/fwversion/internal/semver"
)

// DevTweak marks development builds.
const DevTweak = 255

var extraversionStrip = regexp.MustCompile(`[^a-z0-9.-]`)

// File is the content of a Zephyr VERSION file.
type File struct {
	Major        uint64
	Minor        uint64
	Patch        uint64
	Tweak        uint64
	Extraversion string
}

// Build derives a VERSION file from a strict semantic version.
//
// The tweak is the leading number of the first build-metadata identifier, and
// the extraversion is the prerelease reduced to [a-z0-9.-]. In dev mode the
// tweak is forced to 255 and the extraversion gains a "dev" identifier.
func Build(version string, dev bool) (File, error) {
	v, err := semver.ParseStrict(version)
	if err != nil {
		return File{}, err
	}

	f := File{
		Major: v.Major(),
		Minor: v.Minor(),
		Patch: v.Patch(),
	}

	f.Tweak = uint64(semver.LeadingNumber(v.Metadata()))

	if pre := v.Prerelease(); pre != "" {
		f.Extraversion = extraversionStrip.ReplaceAllString(strings.ToLower(pre), "")
	}

	if dev {
		f.Tweak = DevTweak
		if f.Extraversion != "" {
			f.Extraversion += ".dev"
		} else {
			f.Extraversion = "dev"
		}
	}

	for _, c := range []struct {
		label string
		value uint64
	}{
		{"Major", f.Major},
		{"Minor", f.Minor},
		{"Patch", f.Patch},
		{"Tweak", f.Tweak},
	} {
		if err := semver.CheckByte(version, c.label, c.value); err != nil {
			return File{}, err
		}
	}

	return f, nil
}

// Render returns the VERSION file text.
func (f File) Render() []byte {
	lines := []string{
		fmt.Sprintf("VERSION_MAJOR = %d", f.Major),
		fmt.Sprintf("VERSION_MINOR = %d", f.Minor),
		fmt.Sprintf("PATCHLEVEL = %d", f.Patch),
		fmt.Sprintf("VERSION_TWEAK = %d", f.Tweak),
		fmt.Sprintf("EXTRAVERSION = %s", f.Extraversion),
		"",
	}
	return []byte(strings.Join(lines, "\n"))
}

// String returns MAJOR.MINOR.PATCH[-EXTRAVERSION]+TWEAK.
func (f File) String() string {
	s := fmt.Sprintf("%d.%d.%d", f.Major, f.Minor, f.Patch)
	if f.Extraversion != "" {
		s += "-" + f.Extraversion
	}
	return fmt.Sprintf("%s+%d", s, f.Tweak)
}
