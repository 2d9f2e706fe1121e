package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tacogips/fwversion/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for JSON configuration files.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path. Missing fields are
// filled from DefaultConfig and the result is validated.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newConfigError(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, newConfigError(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, newConfigError(ConfigInvalid, path, "invalid JSON syntax", err)
	}

	mergeConfig(&cfg, DefaultConfig())

	if err := l.Validate(&cfg); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.File = path
		}
		return nil, err
	}

	debug.Debug("[config] Loaded configuration from %s", path)
	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound {
			debug.Debug("[config] %s not found, using defaults", path)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	return validate(config)
}

// Save writes the configuration as indented JSON, creating parent
// directories as needed.
func Save(path string, cfg *Config) error {
	cleanPath := filepath.Clean(path)

	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return newConfigError(ConfigInvalid, cleanPath, fmt.Sprintf("failed to create directory %s", dir), err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cleanPath, data, 0644); err != nil {
		return newConfigError(ConfigInvalid, cleanPath, "failed to write configuration", err)
	}
	return nil
}

// Marshal encodes the configuration as indented JSON with a trailing newline.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, newConfigError(ConfigInvalid, "", "failed to marshal configuration", err)
	}
	return append(data, '\n'), nil
}

// mergeConfig merges missing fields from defaults into cfg.
func mergeConfig(cfg, defaults *Config) {
	// Version
	if cfg.Version.File == "" {
		cfg.Version.File = defaults.Version.File
	}
	if cfg.Version.Default == "" {
		cfg.Version.Default = defaults.Version.Default
	}
	if cfg.Version.PackageJSON == "" {
		cfg.Version.PackageJSON = defaults.Version.PackageJSON
	}
	if cfg.Version.DogfoodSuffix == "" {
		cfg.Version.DogfoodSuffix = defaults.Version.DogfoodSuffix
	}

	// SCM
	if cfg.SCM.Command == "" {
		cfg.SCM.Command = defaults.SCM.Command
	}
	if cfg.SCM.ShortHashLength == 0 {
		cfg.SCM.ShortHashLength = defaults.SCM.ShortHashLength
	}
	if cfg.SCM.Timeout == 0 {
		cfg.SCM.Timeout = defaults.SCM.Timeout
	}

	// Header
	if cfg.Header.Output == "" {
		cfg.Header.Output = defaults.Header.Output
	}
	if cfg.Header.Style == "" {
		cfg.Header.Style = defaults.Header.Style
	}
	if cfg.Header.Guard == "" {
		cfg.Header.Guard = defaults.Header.Guard
	}

	// Zephyr
	if cfg.Zephyr.Root == "" {
		cfg.Zephyr.Root = defaults.Zephyr.Root
	}
	if cfg.Zephyr.FileName == "" {
		cfg.Zephyr.FileName = defaults.Zephyr.FileName
	}

	// CI
	if len(cfg.CI.Variables) == 0 {
		cfg.CI.Variables = defaults.CI.Variables
	}
}
