package app

import (
	"context"
	"strings"

	"github.com/tacogips/fwversion/internal/config"
	"github.com/tacogips/fwversion/internal/debug"
	"github.com/tacogips/fwversion/internal/semver"
)

// InitOptions contains options for creating the version file.
type InitOptions struct {
	// Config is the project configuration (nil = defaults).
	Config *config.Config
	// Deps are the external dependencies.
	Deps Deps
	// Version is the initial base version (empty = configured default).
	Version string
	// Force overwrites an existing version file.
	Force bool
}

// InitResult contains the result of Init.
type InitResult struct {
	// Path is the version file path.
	Path string
	// Version is the written version.
	Version string
	// Overwritten is true when an existing file was replaced.
	Overwritten bool
}

// VersionFileExists reports whether the configured version file exists.
func VersionFileExists(cfg *config.Config, deps Deps) bool {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return deps.withDefaults().Writer.Exists(cfg.Version.File)
}

// Init writes the version file with an initial base version.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	debug.DebugSection("[app] Init workflow start")

	cfg, err := configOrDefault(opts.Config)
	if err != nil {
		return nil, err
	}
	deps := opts.Deps.withDefaults()

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = cfg.Version.Default
	}
	if err := semver.Validate(version); err != nil {
		return nil, NewValidationError("invalid initial version", err)
	}

	exists := deps.Writer.Exists(cfg.Version.File)
	if exists && !opts.Force {
		return nil, NewValidationError(
			"version file already exists at "+cfg.Version.File+" (use --force to overwrite)", nil)
	}

	debug.DebugValue("[app] Version file", cfg.Version.File)
	debug.DebugValue("[app] Version", version)

	if err := deps.Writer.WriteFile(cfg.Version.File, []byte(version+"\n")); err != nil {
		return nil, NewWriteError("failed to write version file", err)
	}

	return &InitResult{
		Path:        cfg.Version.File,
		Version:     version,
		Overwritten: exists,
	}, nil
}

func trimVersion(data []byte) string {
	return strings.TrimSpace(string(data))
}
