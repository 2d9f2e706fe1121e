package app

import (
	"context"
	"errors"

	"github.com/tacogips/fwversion/internal/config"
	"github.com/tacogips/fwversion/internal/debug"
	"github.com/tacogips/fwversion/internal/header"
	"github.com/tacogips/fwversion/internal/resolver"
	"github.com/tacogips/fwversion/internal/semver"
)

// GenerateOptions contains options for header generation.
type GenerateOptions struct {
	// Config is the project configuration (nil = defaults).
	Config *config.Config
	// Deps are the external dependencies.
	Deps Deps
	// DryRun renders the header without writing it.
	DryRun bool
}

// GenerateResult contains the result of header generation.
type GenerateResult struct {
	// Path is the header path.
	Path string
	// Style is the header style used.
	Style string
	// Version is the resolved version string.
	Version string
	// Timestamp is the build timestamp written to the header.
	Timestamp string
	// Content is the rendered header.
	Content []byte
	// Written is false for dry runs.
	Written bool
	// Resolution carries every resolved value and its origin.
	Resolution *resolver.Resolution
}

// Generate resolves the version and writes the version header.
//
// Missing source-control context never fails generation. Malformed version
// components (extended style) and filesystem errors do.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	debug.DebugSection("[app] Generate workflow start")

	cfg, err := configOrDefault(opts.Config)
	if err != nil {
		return nil, err
	}
	deps := opts.Deps.withDefaults()

	debug.DebugValue("[app] Version file", cfg.Version.File)
	debug.DebugValue("[app] Output", cfg.Header.Output)
	debug.DebugValue("[app] Style", cfg.Header.Style)
	debug.DebugValue("[app] DryRun", opts.DryRun)

	res, err := deps.resolver(cfg).Resolve(ctx)
	if err != nil {
		return nil, NewResolveError("failed to resolve version", err)
	}

	content, err := header.Render(cfg.Header.Style, header.Data{
		Version:   res.Version.Text,
		Timestamp: res.Timestamp.Text,
		ShortHash: res.ShortHash.Text,
		Guard:     cfg.Header.Guard,
	})
	if err != nil {
		var perr *semver.ParseError
		if errors.As(err, &perr) {
			return nil, NewParseError("cannot derive numeric version constants", err)
		}
		return nil, NewWriteError("failed to render header", err)
	}

	result := &GenerateResult{
		Path:       cfg.Header.Output,
		Style:      cfg.Header.Style,
		Version:    res.Version.Text,
		Timestamp:  res.Timestamp.Text,
		Content:    content,
		Resolution: res,
	}

	if opts.DryRun {
		debug.Debug("[app] Dry run, skipping write of %s", cfg.Header.Output)
		return result, nil
	}

	if err := deps.Writer.WriteFile(cfg.Header.Output, content); err != nil {
		return nil, NewWriteError("failed to write version header", err)
	}
	result.Written = true

	debug.Debug("[app] Generate workflow completed")
	return result, nil
}
