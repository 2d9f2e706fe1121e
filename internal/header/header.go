// Package header renders and writes the C preprocessor header that carries
// the firmware version into the build.
package header

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/tacogips/fwversion/internal/config"
	"github.com/tacogips/fwversion/internal/semver"
)

// Data is the input to Render.
type Data struct {
	// Version is the resolved version string.
	Version string
	// Timestamp is the build timestamp.
	Timestamp string
	// ShortHash is the short commit hash.
	ShortHash string
	// Guard is the include guard macro. Defaults to APP_VERSION_H.
	Guard string
}

// view is what the templates see.
type view struct {
	Data
	Parsed semver.Version
}

const preamble = `// Auto-generated file, do not edit

#ifndef {{.Guard}}
#define {{.Guard}}

`

const basicBody = `#define DEVICE_SOFTWARE_VERSION {{cstr .Version}}
#define BUILD_TIMESTAMP {{cstr .Timestamp}}
`

const extendedBody = `#define APP_VERSION_STRING {{cstr .Parsed.Core}}
#define APP_VERSION_EXTENDED_STRING {{cstr .Parsed.Extended}}
#define APP_VERSION_TWEAK_STRING {{cstr .Parsed.Extended}}
#define DEVICE_SOFTWARE_VERSION {{cstr .Version}}
#define BUILD_TIMESTAMP {{cstr .Timestamp}}
#define APP_BUILD_VERSION {{cstr .ShortHash}}

#define APPVERSION {{hex .Parsed.AppVersion}}
#define APP_VERSION_NUMBER {{hex .Parsed.Number}}
#define APP_VERSION_MAJOR {{.Parsed.Major}}
#define APP_VERSION_MINOR {{.Parsed.Minor}}
#define APP_PATCHLEVEL {{.Parsed.Patch}}
#define APP_TWEAK {{.Parsed.TweakNumber}}
`

const epilogue = `
#endif // {{.Guard}}
`

var funcs = template.FuncMap{
	"cstr": CString,
	"hex":  semver.Hex,
}

var templates = map[string]*template.Template{
	config.StyleBasic:    template.Must(template.New(config.StyleBasic).Funcs(funcs).Parse(preamble + basicBody + epilogue)),
	config.StyleExtended: template.Must(template.New(config.StyleExtended).Funcs(funcs).Parse(preamble + extendedBody + epilogue)),
}

// Render produces the header text for the given style. The extended style
// parses the version and fails on non-numeric or out-of-range components.
func Render(style string, d Data) ([]byte, error) {
	if err := config.ValidateStyle(style); err != nil {
		return nil, newWriteError(RenderFailed, "cannot render header", "", err)
	}
	if d.Guard == "" {
		d.Guard = config.DefaultGuard
	}

	v := view{Data: d}
	if style == config.StyleExtended {
		parsed, err := semver.Parse(d.Version)
		if err != nil {
			return nil, err
		}
		v.Parsed = parsed
	}

	var buf bytes.Buffer
	if err := templates[style].Execute(&buf, v); err != nil {
		return nil, newWriteError(RenderFailed, "failed to execute header template", "", err)
	}
	return buf.Bytes(), nil
}

var cEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// CString renders s as a C string literal.
func CString(s string) string {
	return `"` + cEscaper.Replace(s) + `"`
}
