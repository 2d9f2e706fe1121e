package app

import (
	"context"

	"github.com/tacogips/fwversion/internal/config"
	"github.com/tacogips/fwversion/internal/debug"
	"github.com/tacogips/fwversion/internal/semver"
)

// SyncOptions contains options for copying a package.json version into the
// version file.
type SyncOptions struct {
	// Config is the project configuration (nil = defaults).
	Config *config.Config
	// Deps are the external dependencies.
	Deps Deps
	// PackagePath overrides the configured package.json path.
	PackagePath string
	// DryRun reports without writing.
	DryRun bool
}

// SyncResult contains the result of Sync.
type SyncResult struct {
	// PackagePath is the package.json that was read.
	PackagePath string
	// VersionFile is the file that was (or would be) written.
	VersionFile string
	// Version is the normalized version.
	Version string
	// Previous is the old version file content, empty if none.
	Previous string
	// Changed is true when the content differs from Previous.
	Changed bool
}

// Sync copies the version field of package.json into the version file. A
// leading "v" and build metadata are dropped, since generate appends its own
// metadata to the base version.
func Sync(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	debug.DebugSection("[app] Sync workflow start")

	cfg, err := configOrDefault(opts.Config)
	if err != nil {
		return nil, err
	}
	deps := opts.Deps.withDefaults()

	pkgPath := opts.PackagePath
	if pkgPath == "" {
		pkgPath = cfg.Version.PackageJSON
	}

	raw, err := readPackageVersion(deps.ReadFile, pkgPath)
	if err != nil {
		return nil, NewResolveError("failed to read package version", err)
	}
	version, err := semver.Normalize(raw)
	if err != nil {
		return nil, NewParseError("invalid version in "+pkgPath, err)
	}
	debug.Debug("[app] package version %s normalized to %s", raw, version)

	result := &SyncResult{
		PackagePath: pkgPath,
		VersionFile: cfg.Version.File,
		Version:     version,
	}

	if data, err := deps.ReadFile(cfg.Version.File); err == nil {
		result.Previous = trimVersion(data)
	}
	result.Changed = result.Previous != version

	if opts.DryRun {
		return result, nil
	}

	if err := deps.Writer.WriteFile(cfg.Version.File, []byte(version+"\n")); err != nil {
		return nil, NewWriteError("failed to write version file", err)
	}
	return result, nil
}
