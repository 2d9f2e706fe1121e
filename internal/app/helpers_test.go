package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tacogips/fwversion/internal/config"
)

// fakeGit answers git commands without a repository.
type fakeGit struct {
	missing bool
	outputs map[string]string
}

func (f *fakeGit) LookPath(name string) (string, error) {
	if f.missing {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeGit) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	out, ok := f.outputs[strings.Join(args, " ")]
	if !ok {
		return nil, errors.New("exit status 128")
	}
	return []byte(out), nil
}

func workingGit() *fakeGit {
	return &fakeGit{outputs: map[string]string{
		"rev-parse --abbrev-ref HEAD":      "main\n",
		"rev-parse HEAD":                   "abc1234def5678900000000000000000000000000\n",
		"describe --tags --always --dirty": "v1.2.3-2-gabc1234\n",
	}}
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
}

// project creates a temporary project layout and returns a config whose
// paths point into it.
func project(t *testing.T, version string) *config.Config {
	t.Helper()
	root := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Version.File = filepath.Join(root, "firmware-pio", "version.txt")
	cfg.Version.PackageJSON = filepath.Join(root, "firmware-pio", "package.json")
	cfg.Header.Output = filepath.Join(root, "firmware-pio", "include", "app_version.h")
	cfg.Zephyr.Root = filepath.Join(root, "firmware")

	if version != "" {
		writeFile(t, cfg.Version.File, version)
	}
	return cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func testDeps(environ map[string]string) Deps {
	if environ == nil {
		environ = map[string]string{}
	}
	return Deps{
		Environ: environ,
		Runner:  workingGit(),
		Now:     fixedClock,
	}
}

// memWriter keeps written files in memory.
type memWriter struct {
	files map[string][]byte
}

func newMemWriter() *memWriter {
	return &memWriter{files: map[string][]byte{}}
}

func (w *memWriter) WriteFile(path string, content []byte) error {
	w.files[path] = append([]byte(nil), content...)
	return nil
}

func (w *memWriter) CreateDir(path string) error {
	return nil
}

func (w *memWriter) Exists(path string) bool {
	_, ok := w.files[path]
	return ok
}
