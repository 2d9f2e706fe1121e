// Package resolver computes the firmware version string and build metadata
// from the version file, environment overrides and source control.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/tacogips/fwversion/internal/config"
	"github.com/tacogips/fwversion/internal/debug"
	"github.com/tacogips/fwversion/internal/scm"
)

// TimestampLayout is the layout of the default build timestamp.
const TimestampLayout = "2006-01-02"

// SCM provides best-effort source-control metadata.
type SCM interface {
	Branch(ctx context.Context) scm.Result
	ShortHash(ctx context.Context) scm.Result
}

// Options configures a Resolver. Every external read is injectable.
type Options struct {
	// VersionFile holds the base version.
	VersionFile string
	// DefaultVersion is used when VersionFile does not exist.
	DefaultVersion string
	// DisableMetadata returns the base version without the
	// +<branch>.<sha>[.dogfood] suffix.
	DisableMetadata bool
	// DogfoodSuffix is appended outside CI.
	DogfoodSuffix string
	// CIVariables mark a CI build when any is set to a non-empty value.
	CIVariables []string

	// Environ is the environment to read. Nil means the process environment.
	Environ map[string]string
	// SCM answers branch and commit queries.
	SCM SCM
	// ReadFile reads the version file. Defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	// Version is the final version string.
	Version Value `json:"version"`
	// BaseVersion is the version before metadata was appended.
	BaseVersion Value `json:"base_version"`
	Branch      Value `json:"branch"`
	ShortHash   Value `json:"short_hash"`
	Timestamp   Value `json:"timestamp"`
	// Dogfood is true outside recognized CI environments.
	Dogfood bool `json:"dogfood"`
	// CIVariables lists the CI markers that were found.
	CIVariables []string `json:"ci_variables,omitempty"`
}

// Resolver resolves version information.
type Resolver struct {
	opts Options
}

// New creates a Resolver, filling unset options with defaults.
func New(opts Options) *Resolver {
	if opts.VersionFile == "" {
		opts.VersionFile = config.DefaultVersionFile
	}
	if opts.DefaultVersion == "" {
		opts.DefaultVersion = config.DefaultBaseVersion
	}
	if opts.DogfoodSuffix == "" {
		opts.DogfoodSuffix = config.DefaultDogfoodSuffix
	}
	if opts.CIVariables == nil {
		opts.CIVariables = config.DefaultCIVariables()
	}
	if opts.Environ == nil {
		opts.Environ = environMap()
	}
	if opts.SCM == nil {
		opts.SCM = scm.New(scm.Options{})
	}
	if opts.ReadFile == nil {
		opts.ReadFile = os.ReadFile
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Resolver{opts: opts}
}

// Resolve computes the version string and build metadata.
//
// Source-control failures never produce an error; they surface as values
// with OriginDefault. An error is returned only when the version file exists
// but cannot be read, or the environment cannot be decoded.
func (r *Resolver) Resolve(ctx context.Context) (*Resolution, error) {
	debug.DebugSection("[resolver] Resolve")

	overrides, err := ParseOverrides(r.opts.Environ)
	if err != nil {
		return nil, err
	}

	base, err := r.baseVersion(overrides)
	if err != nil {
		return nil, err
	}

	res := &Resolution{
		BaseVersion: base,
		Branch:      fromOverrideOr(ctx, overrides.Branch, r.opts.SCM.Branch),
		ShortHash:   fromOverrideOr(ctx, overrides.ShortSHA, r.opts.SCM.ShortHash),
		Timestamp:   r.timestamp(overrides),
		CIVariables: r.detectCI(),
	}
	res.Dogfood = len(res.CIVariables) == 0

	switch full := overrides.FullVersion(); {
	case full != "":
		res.Version = Value{Text: full, Origin: OriginEnv}
	case r.opts.DisableMetadata:
		res.Version = base
	default:
		text := fmt.Sprintf("%s+%s.%s", base.Text, res.Branch.Text, res.ShortHash.Text)
		if res.Dogfood {
			text += r.opts.DogfoodSuffix
		}
		res.Version = Value{Text: text, Origin: OriginComposed}
	}

	debug.DebugValue("[resolver] Version", res.Version.Text)
	debug.DebugValue("[resolver] Version origin", res.Version.Origin)
	debug.DebugValue("[resolver] Timestamp", res.Timestamp.Text)
	debug.DebugValue("[resolver] Dogfood", res.Dogfood)
	debug.DebugJSON("resolution", res)
	return res, nil
}

// BaseVersion returns the base version without metadata.
func (r *Resolver) BaseVersion() (Value, error) {
	overrides, err := ParseOverrides(r.opts.Environ)
	if err != nil {
		return Value{}, err
	}
	return r.baseVersion(overrides)
}

// IsDogfood reports whether no CI marker variable is set.
func (r *Resolver) IsDogfood() bool {
	return len(r.detectCI()) == 0
}

func (r *Resolver) baseVersion(o Overrides) (Value, error) {
	if o.BaseVersion != "" {
		return Value{Text: strings.TrimSpace(o.BaseVersion), Origin: OriginEnv}, nil
	}
	return ReadVersionFile(r.opts.ReadFile, r.opts.VersionFile, r.opts.DefaultVersion)
}

func (r *Resolver) timestamp(o Overrides) Value {
	if ts := o.Timestamp(); ts != "" {
		return Value{Text: ts, Origin: OriginEnv}
	}
	return Value{Text: r.opts.Now().UTC().Format(TimestampLayout), Origin: OriginClock}
}

func (r *Resolver) detectCI() []string {
	var found []string
	for _, name := range r.opts.CIVariables {
		if r.opts.Environ[name] != "" {
			found = append(found, name)
		}
	}
	return found
}

// ReadVersionFile reads and trims a version file. A missing file yields def
// with OriginDefault; other read errors are returned.
func ReadVersionFile(readFile func(string) ([]byte, error), path, def string) (Value, error) {
	data, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			debug.Debug("[resolver] %s not found, using default %s", path, def)
			return Value{Text: def, Origin: OriginDefault, Err: err}, nil
		}
		return Value{}, fmt.Errorf("failed to read version file %s: %w", path, err)
	}
	return Value{Text: strings.TrimSpace(string(data)), Origin: OriginFile}, nil
}

func fromOverrideOr(ctx context.Context, override string, lookup func(context.Context) scm.Result) Value {
	if override != "" {
		return Value{Text: override, Origin: OriginEnv}
	}
	res := lookup(ctx)
	if res.Fallback {
		return Value{Text: res.Value, Origin: OriginDefault, Err: res.Err}
	}
	return Value{Text: res.Value, Origin: OriginSCM}
}
