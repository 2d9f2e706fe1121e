package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/fwversion/internal/config"
	"github.com/tacogips/fwversion/internal/resolver"
	"github.com/tacogips/fwversion/internal/semver"
)

func TestGenerateBasic(t *testing.T) {
	cfg := project(t, "1.2.3\n")

	result, err := Generate(context.Background(), GenerateOptions{
		Config: cfg,
		Deps:   testDeps(nil),
	})
	require.NoError(t, err)

	assert.True(t, result.Written)
	assert.Equal(t, "1.2.3+main.abc1234.dogfood", result.Version)
	assert.Equal(t, "2026-03-15", result.Timestamp)

	content := readFile(t, cfg.Header.Output)
	assert.Contains(t, content, `#define DEVICE_SOFTWARE_VERSION "1.2.3+main.abc1234.dogfood"`)
	assert.Contains(t, content, `#define BUILD_TIMESTAMP "2026-03-15"`)
	assert.Equal(t, string(result.Content), content)
}

func TestGenerateExtended(t *testing.T) {
	cfg := project(t, "1.2.3")
	cfg.Header.Style = config.StyleExtended
	cfg.Version.DisableMetadata = true

	result, err := Generate(context.Background(), GenerateOptions{
		Config: cfg,
		Deps:   testDeps(nil),
	})
	require.NoError(t, err)

	content := readFile(t, cfg.Header.Output)
	assert.Contains(t, content, `#define APP_VERSION_STRING "1.2.3"`)
	assert.Contains(t, content, "#define APP_VERSION_NUMBER 0x10203\n")
	assert.Contains(t, content, "#define APPVERSION 0x10200\n")
	assert.Contains(t, content, `#define APP_BUILD_VERSION "abc1234"`)
	assert.Equal(t, "1.2.3", result.Version)
}

func TestGenerateWithoutVersionFile(t *testing.T) {
	cfg := project(t, "")
	cfg.Version.DisableMetadata = true

	result, err := Generate(context.Background(), GenerateOptions{
		Config: cfg,
		Deps:   testDeps(nil),
	})
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", result.Version)
	assert.True(t, result.Resolution.BaseVersion.Defaulted())
}

func TestGenerateFullOverride(t *testing.T) {
	cfg := project(t, "1.2.3")
	deps := testDeps(map[string]string{"GITVERSION_FULLSEMVER": "9.8.7+42"})
	deps.Runner = &fakeGit{missing: true}

	result, err := Generate(context.Background(), GenerateOptions{Config: cfg, Deps: deps})
	require.NoError(t, err)
	assert.Equal(t, "9.8.7+42", result.Version)
	assert.Equal(t, resolver.OriginEnv, result.Resolution.Version.Origin)
}

func TestGenerateWithoutGit(t *testing.T) {
	cfg := project(t, "1.2.3")
	deps := testDeps(map[string]string{"GITHUB_ACTIONS": "true"})
	deps.Runner = &fakeGit{missing: true}

	result, err := Generate(context.Background(), GenerateOptions{Config: cfg, Deps: deps})
	require.NoError(t, err)
	assert.Equal(t, "1.2.3+unknown.0000000", result.Version)
	assert.True(t, result.Resolution.Branch.Defaulted())
	assert.True(t, result.Resolution.ShortHash.Defaulted())
}

func TestGenerateIsIdempotent(t *testing.T) {
	cfg := project(t, "1.2.3")
	cfg.Header.Style = config.StyleExtended

	opts := GenerateOptions{Config: cfg, Deps: testDeps(map[string]string{"CI": "true"})}

	_, err := Generate(context.Background(), opts)
	require.NoError(t, err)
	first := readFile(t, cfg.Header.Output)

	_, err = Generate(context.Background(), opts)
	require.NoError(t, err)
	second := readFile(t, cfg.Header.Output)

	assert.Equal(t, first, second)
}

func TestGenerateDryRun(t *testing.T) {
	cfg := project(t, "1.2.3")

	result, err := Generate(context.Background(), GenerateOptions{
		Config: cfg,
		Deps:   testDeps(nil),
		DryRun: true,
	})
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.NotEmpty(t, result.Content)

	_, err = os.Stat(cfg.Header.Output)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateErrors(t *testing.T) {
	t.Run("malformed version in extended style", func(t *testing.T) {
		cfg := project(t, "1.x.3")
		cfg.Header.Style = config.StyleExtended

		_, err := Generate(context.Background(), GenerateOptions{Config: cfg, Deps: testDeps(nil)})
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, ParseFailed, appErr.Type)

		var perr *semver.ParseError
		assert.True(t, errors.As(err, &perr))

		_, statErr := os.Stat(cfg.Header.Output)
		assert.True(t, os.IsNotExist(statErr), "nothing is written on parse failure")
	})

	t.Run("output directory blocked by a file", func(t *testing.T) {
		cfg := project(t, "1.2.3")
		blocker := filepath.Dir(cfg.Header.Output)
		writeFile(t, blocker, "not a directory")

		_, err := Generate(context.Background(), GenerateOptions{Config: cfg, Deps: testDeps(nil)})
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, WriteFailed, appErr.Type)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		cfg := project(t, "1.2.3")
		cfg.Header.Style = "fancy"

		_, err := Generate(context.Background(), GenerateOptions{Config: cfg, Deps: testDeps(nil)})
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, ConfigFailed, appErr.Type)
	})
}

func TestGenerateExistingDirectory(t *testing.T) {
	cfg := project(t, "1.2.3")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.Header.Output), 0755))

	_, err := Generate(context.Background(), GenerateOptions{Config: cfg, Deps: testDeps(nil)})
	assert.NoError(t, err)
}

func TestShow(t *testing.T) {
	cfg := project(t, "1.2.3")

	result, err := Show(context.Background(), ShowOptions{
		Config: cfg,
		Deps:   testDeps(map[string]string{"CI": "1"}),
	})
	require.NoError(t, err)

	assert.Equal(t, "1.2.3+main.abc1234", result.Resolution.Version.Text)
	assert.Equal(t, "v1.2.3-2-gabc1234", result.Describe.Value)
	require.NotNil(t, result.Parsed)
	assert.Equal(t, "main.abc1234", result.Parsed.Tweak)
	assert.NoError(t, result.ParseErr)

	_, err = os.Stat(cfg.Header.Output)
	assert.True(t, os.IsNotExist(err), "show never writes")
}

func TestShowUnparseableVersion(t *testing.T) {
	cfg := project(t, "1.2.3")

	result, err := Show(context.Background(), ShowOptions{
		Config: cfg,
		Deps:   testDeps(map[string]string{"VERSION": "1.2.3-rc.1"}),
	})
	require.NoError(t, err)
	assert.Nil(t, result.Parsed)
	assert.Error(t, result.ParseErr)
}
