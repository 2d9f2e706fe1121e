package header

import "fmt"

// WriteErrorType categorizes header errors.
type WriteErrorType int

const (
	// WriteFailed indicates a file write operation failed.
	WriteFailed WriteErrorType = iota
	// DirFailed indicates the output directory could not be created.
	DirFailed
	// RenderFailed indicates the header text could not be produced.
	RenderFailed
)

// WriteError represents header rendering and writing errors.
type WriteError struct {
	// Type categorizes the error.
	Type WriteErrorType
	// Message is the error message.
	Message string
	// Path is the file or directory involved (if applicable).
	Path string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s (path: %s)", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

func newWriteError(typ WriteErrorType, message, path string, cause error) *WriteError {
	return &WriteError{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}
