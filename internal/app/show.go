package app

import (
	"context"

	"github.com/tacogips/fwversion/internal/config"
	"github.com/tacogips/fwversion/internal/resolver"
	"github.com/tacogips/fwversion/internal/scm"
	"github.com/tacogips/fwversion/internal/semver"
)

// ShowOptions contains options for inspecting the resolved version.
type ShowOptions struct {
	// Config is the project configuration (nil = defaults).
	Config *config.Config
	// Deps are the external dependencies.
	Deps Deps
}

// ShowResult describes the version that Generate would write.
type ShowResult struct {
	Resolution *resolver.Resolution
	// Parsed is set when the version decomposes into numeric components.
	Parsed *semver.Version
	// ParseErr explains why Parsed is nil.
	ParseErr error
	// Describe is git describe output for the working tree.
	Describe scm.Result
}

// Show resolves the version without writing anything.
func Show(ctx context.Context, opts ShowOptions) (*ShowResult, error) {
	cfg, err := configOrDefault(opts.Config)
	if err != nil {
		return nil, err
	}
	deps := opts.Deps.withDefaults()

	res, err := deps.resolver(cfg).Resolve(ctx)
	if err != nil {
		return nil, NewResolveError("failed to resolve version", err)
	}

	out := &ShowResult{
		Resolution: res,
		Describe:   deps.git(cfg).Describe(ctx),
	}
	if parsed, err := semver.Parse(res.Version.Text); err != nil {
		out.ParseErr = err
	} else {
		out.Parsed = &parsed
	}
	return out, nil
}
