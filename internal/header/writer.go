package header

import (
	"os"
	"path/filepath"

	"github.com/tacogips/fwversion/internal/debug"
)

// Writer writes generated files to the filesystem.
type Writer interface {
	// WriteFile replaces the file at path with content.
	WriteFile(path string, content []byte) error

	// CreateDir creates a directory and any necessary parents. It succeeds
	// when the directory already exists.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct {
	mode os.FileMode
}

// NewFileWriter creates a FileWriter producing 0644 files.
func NewFileWriter() Writer {
	return &FileWriter{mode: 0644}
}

// WriteFile creates parent directories, then writes content to a temporary
// sibling file and renames it over path so readers never see a partial file.
func (w *FileWriter) WriteFile(path string, content []byte) error {
	debug.Debug("[header] Writing file: %s (size: %d bytes)", path, len(content))

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return err
		}
	}

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.mode)
	if err != nil {
		return newWriteError(WriteFailed, "failed to create temporary file", path, err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return newWriteError(WriteFailed, "failed to write file content", path, err)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return newWriteError(WriteFailed, "failed to close file", path, closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return newWriteError(WriteFailed, "failed to rename temporary file", path, err)
	}

	debug.Debug("[header] File written successfully: %s", path)
	return nil
}

// CreateDir creates a directory and any necessary parent directories.
// Uses 0755 permissions for created directories.
func (w *FileWriter) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newWriteError(DirFailed, "failed to create directory", path, err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
