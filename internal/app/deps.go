// Package app implements the fwversion workflows. Each workflow is an
// explicit function taking its configuration and external dependencies, so
// nothing runs at import time and every read can be replaced in tests.
package app

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/tacogips/fwversion/internal/config"
	"github.com/tacogips/fwversion/internal/header"
	"github.com/tacogips/fwversion/internal/resolver"
	"github.com/tacogips/fwversion/internal/scm"
)

// Deps are the external inputs and outputs of a workflow. Zero values use
// the process environment, the real filesystem, the system clock and git.
type Deps struct {
	// Environ is the environment to read.
	Environ map[string]string
	// Runner executes git.
	Runner scm.Runner
	// ReadFile reads input files.
	ReadFile func(name string) ([]byte, error)
	// ReadDir lists directories.
	ReadDir func(name string) ([]os.DirEntry, error)
	// Now returns the current time.
	Now func() time.Time
	// Writer writes output files.
	Writer header.Writer
}

func (d Deps) withDefaults() Deps {
	if d.Environ == nil {
		d.Environ = env.ToMap(os.Environ())
	}
	if d.Runner == nil {
		d.Runner = scm.NewExecRunner()
	}
	if d.ReadFile == nil {
		d.ReadFile = os.ReadFile
	}
	if d.ReadDir == nil {
		d.ReadDir = os.ReadDir
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Writer == nil {
		d.Writer = header.NewFileWriter()
	}
	return d
}

// git builds the source-control accessor described by cfg.
func (d Deps) git(cfg *config.Config) *scm.Git {
	return scm.New(scm.Options{
		Runner:          d.Runner,
		Command:         cfg.SCM.Command,
		Dir:             cfg.SCM.Dir,
		ShortHashLength: cfg.SCM.ShortHashLength,
		Timeout:         time.Duration(cfg.SCM.Timeout) * time.Second,
	})
}

// resolver builds a version resolver described by cfg.
func (d Deps) resolver(cfg *config.Config) *resolver.Resolver {
	return resolver.New(resolver.Options{
		VersionFile:     cfg.Version.File,
		DefaultVersion:  cfg.Version.Default,
		DisableMetadata: cfg.Version.DisableMetadata,
		DogfoodSuffix:   cfg.Version.DogfoodSuffix,
		CIVariables:     cfg.CI.Variables,
		Environ:         d.Environ,
		SCM:             d.git(cfg),
		ReadFile:        d.ReadFile,
		Now:             d.Now,
	})
}

// configOrDefault validates cfg, substituting defaults when nil.
func configOrDefault(cfg *config.Config) (*config.Config, error) {
	if cfg == nil {
		return config.DefaultConfig(), nil
	}
	if err := config.Validate(cfg); err != nil {
		return nil, NewConfigError("invalid configuration", err)
	}
	return cfg, nil
}
