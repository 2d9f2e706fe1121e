package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/tacogips/fwversion/internal/config"
	"github.com/tacogips/fwversion/internal/debug"
	"github.com/tacogips/fwversion/internal/resolver"
	"github.com/tacogips/fwversion/internal/zephyr"
)

// ZephyrOptions contains options for Zephyr VERSION file generation.
type ZephyrOptions struct {
	// Config is the project configuration (nil = defaults).
	Config *config.Config
	// Deps are the external dependencies.
	Deps Deps
	// Dirs are the firmware directories. Empty means every subdirectory of
	// the configured Zephyr root that has a package.json.
	Dirs []string
	// Dev marks a development build (tweak 255, "dev" extraversion).
	Dev bool
	// DryRun renders without writing.
	DryRun bool
}

// ZephyrFile describes one generated VERSION file.
type ZephyrFile struct {
	// Path is the VERSION file path.
	Path string
	// Source is where the version came from.
	Source string
	// Version is the input version string.
	Version string
	// File is the derived content.
	File zephyr.File
}

// ZephyrResult contains the result of Zephyr VERSION generation.
type ZephyrResult struct {
	Files []ZephyrFile
}

// Zephyr writes a VERSION file into each firmware directory. Each directory
// takes its version from its own package.json. When scanning the Zephyr root,
// directories without one are not firmware and are skipped; directories named
// explicitly fall back to the project's base version.
func Zephyr(ctx context.Context, opts ZephyrOptions) (*ZephyrResult, error) {
	debug.DebugSection("[app] Zephyr workflow start")

	cfg, err := configOrDefault(opts.Config)
	if err != nil {
		return nil, err
	}
	deps := opts.Deps.withDefaults()

	dirs := opts.Dirs
	scanned := len(dirs) == 0
	if scanned {
		dirs, err = listSubdirs(deps, cfg.Zephyr.Root)
		if err != nil {
			return nil, NewValidationError("cannot list firmware directories in "+cfg.Zephyr.Root, err)
		}
		if len(dirs) == 0 {
			return nil, NewValidationError("no firmware directories found in "+cfg.Zephyr.Root, nil)
		}
	}

	base, err := deps.resolver(cfg).BaseVersion()
	if err != nil {
		return nil, NewResolveError("failed to resolve base version", err)
	}

	result := &ZephyrResult{}
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		version, source := base.Text, baseSource(cfg, base)
		pkgPath := filepath.Join(dir, "package.json")
		pkgVersion, err := readPackageVersion(deps.ReadFile, pkgPath)
		switch {
		case err == nil:
			version, source = pkgVersion, pkgPath
		case !errors.Is(err, fs.ErrNotExist):
			return nil, NewResolveError("failed to read "+pkgPath, err)
		case scanned:
			debug.Debug("[app] %s has no package.json, skipping", dir)
			continue
		}
		debug.Debug("[app] %s: version %s from %s", dir, version, source)

		f, err := zephyr.Build(version, opts.Dev)
		if err != nil {
			return nil, NewParseError("invalid version for "+dir, err)
		}

		out := filepath.Join(dir, cfg.Zephyr.FileName)
		if !opts.DryRun {
			if err := deps.Writer.WriteFile(out, f.Render()); err != nil {
				return nil, NewWriteError("failed to write "+out, err)
			}
		}

		result.Files = append(result.Files, ZephyrFile{
			Path:    out,
			Source:  source,
			Version: version,
			File:    f,
		})
	}

	if scanned && len(result.Files) == 0 {
		return nil, NewValidationError("no firmware directories with a package.json found in "+cfg.Zephyr.Root, nil)
	}
	return result, nil
}

func baseSource(cfg *config.Config, base resolver.Value) string {
	switch base.Origin {
	case resolver.OriginEnv:
		return "environment"
	case resolver.OriginDefault:
		return "default"
	default:
		return cfg.Version.File
	}
}

func listSubdirs(deps Deps, root string) ([]string, error) {
	entries, err := deps.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(root, e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}
