package app

import (
	"context"

	"github.com/tacogips/fwversion/internal/config"
	"github.com/tacogips/fwversion/internal/debug"
)

// ConfigInitOptions contains options for writing a configuration file.
type ConfigInitOptions struct {
	// Path is the configuration file to create.
	Path string
	// Deps are the external dependencies.
	Deps Deps
	// Force overwrites an existing file.
	Force bool
}

// ConfigInit writes the default configuration to Path.
func ConfigInit(ctx context.Context, opts ConfigInitOptions) (*config.Config, error) {
	debug.DebugSection("[app] ConfigInit workflow start")

	path := opts.Path
	if path == "" {
		path = config.DefaultConfigFile
	}
	deps := opts.Deps.withDefaults()

	if deps.Writer.Exists(path) && !opts.Force {
		return nil, NewValidationError("configuration already exists at "+path+" (use --force to overwrite)", nil)
	}

	cfg := config.DefaultConfig()
	data, err := config.Marshal(cfg)
	if err != nil {
		return nil, NewConfigError("failed to encode configuration", err)
	}
	if err := deps.Writer.WriteFile(path, data); err != nil {
		return nil, NewWriteError("failed to write configuration", err)
	}

	debug.Debug("[app] Wrote configuration to %s", path)
	return cfg, nil
}
