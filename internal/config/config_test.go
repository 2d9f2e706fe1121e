package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "firmware-pio/version.txt", cfg.Version.File)
	assert.Equal(t, "0.1.0", cfg.Version.Default)
	assert.Equal(t, ".dogfood", cfg.Version.DogfoodSuffix)
	assert.False(t, cfg.Version.DisableMetadata)

	assert.Equal(t, "git", cfg.SCM.Command)
	assert.Equal(t, 7, cfg.SCM.ShortHashLength)

	assert.Equal(t, "firmware-pio/include/app_version.h", cfg.Header.Output)
	assert.Equal(t, StyleBasic, cfg.Header.Style)
	assert.Equal(t, "APP_VERSION_H", cfg.Header.Guard)

	assert.Equal(t, []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_HOME", "BUILD_ID"}, cfg.CI.Variables)

	assert.NoError(t, Validate(cfg))
}

func TestLoadConfig(t *testing.T) {
	loader := NewLoader()

	t.Run("partial config merges defaults", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "fwversion.json")
		writeJSON(t, cfgPath, map[string]interface{}{
			"header": map[string]interface{}{"style": "extended"},
			"scm":    map[string]interface{}{"short_hash_length": 12},
		})

		cfg, err := loader.Load(cfgPath)
		require.NoError(t, err)

		assert.Equal(t, StyleExtended, cfg.Header.Style)
		assert.Equal(t, 12, cfg.SCM.ShortHashLength)
		assert.Equal(t, DefaultHeaderOutput, cfg.Header.Output)
		assert.Equal(t, DefaultVersionFile, cfg.Version.File)
		assert.Equal(t, DefaultCIVariables(), cfg.CI.Variables)
	})

	t.Run("zero timeout uses default", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "fwversion.json")
		writeJSON(t, cfgPath, map[string]interface{}{
			"scm": map[string]interface{}{"timeout": 0},
		})

		cfg, err := loader.Load(cfgPath)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().SCM.Timeout, cfg.SCM.Timeout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/fwversion.json")
		require.Error(t, err)

		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %T", err)
		assert.Equal(t, ConfigNotFound, cfgErr.Type)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "fwversion.json")
		require.NoError(t, os.WriteFile(cfgPath, []byte("{ invalid json }"), 0644))

		_, err := loader.Load(cfgPath)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, ConfigInvalid, cfgErr.Type)
	})

	t.Run("invalid value reports file and field", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "fwversion.json")
		writeJSON(t, cfgPath, map[string]interface{}{
			"header": map[string]interface{}{"style": "fancy"},
		})

		_, err := loader.Load(cfgPath)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, ConfigValidationFailed, cfgErr.Type)
		assert.Equal(t, "header.style", cfgErr.Field)
		assert.Equal(t, cfgPath, cfgErr.File)
	})
}

func TestLoadOrDefault(t *testing.T) {
	loader := NewLoader()

	t.Run("returns defaults for missing file", func(t *testing.T) {
		cfg, err := loader.LoadOrDefault("/nonexistent/fwversion.json")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("propagates invalid file", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "fwversion.json")
		require.NoError(t, os.WriteFile(cfgPath, []byte("not json"), 0644))

		_, err := loader.LoadOrDefault(cfgPath)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero hash length", func(c *Config) { c.SCM.ShortHashLength = 0 }, "scm.short_hash_length"},
		{"hash length too long", func(c *Config) { c.SCM.ShortHashLength = 41 }, "scm.short_hash_length"},
		{"negative timeout", func(c *Config) { c.SCM.Timeout = -1 }, "scm.timeout"},
		{"unknown style", func(c *Config) { c.Header.Style = "zephyr" }, "header.style"},
		{"bad guard", func(c *Config) { c.Header.Guard = "APP-VERSION" }, "header.guard"},
		{"empty output", func(c *Config) { c.Header.Output = " " }, "header.output"},
		{"empty version file", func(c *Config) { c.Version.File = "" }, "version.file"},
		{"zephyr file with separator", func(c *Config) { c.Zephyr.FileName = "a/VERSION" }, "zephyr.file_name"},
		{"bad ci variable", func(c *Config) { c.CI.Variables = []string{"CI", "NOT VALID"} }, "ci.variables[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := NewLoader().Validate(cfg)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, ConfigValidationFailed, cfgErr.Type)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.True(t, data[len(data)-1] == '\n')

	var cfg Config
	require.NoError(t, json.Unmarshal(data, &cfg))
	assert.Equal(t, DefaultConfig(), &cfg)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fwversion.json")

	cfg := DefaultConfig()
	cfg.Header.Style = StyleExtended
	require.NoError(t, Save(path, cfg))

	loaded, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := LoadSettings(map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, DefaultConfigFile, s.ConfigPath)
		assert.False(t, s.Debug)
		assert.False(t, s.ColorDisabled())
	})

	t.Run("custom values", func(t *testing.T) {
		s, err := LoadSettings(map[string]string{
			"FWVERSION_CONFIG": "build/fw.json",
			"FWVERSION_DEBUG":  "true",
			"NO_COLOR":         "1",
		})
		require.NoError(t, err)
		assert.Equal(t, "build/fw.json", s.ConfigPath)
		assert.True(t, s.Debug)
		assert.True(t, s.ColorDisabled())
	})

	t.Run("invalid bool", func(t *testing.T) {
		_, err := LoadSettings(map[string]string{"FWVERSION_DEBUG": "maybe"})
		assert.Error(t, err)
	})
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Type: ConfigValidationFailed, File: "fw.json", Field: "header.guard", Message: "bad"}
	assert.Equal(t, "configuration fw.json: header.guard: bad", err.Error())
	assert.Equal(t, "validation failed", err.Type.String())
}
