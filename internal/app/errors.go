package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ConfigFailed indicates configuration could not be loaded or is invalid.
	ConfigFailed AppErrorType = iota
	// ResolveFailed indicates the version could not be resolved.
	ResolveFailed
	// ParseFailed indicates a version string could not be decomposed.
	ParseFailed
	// WriteFailed indicates an output file could not be written.
	WriteFailed
	// ValidationFailed indicates invalid options or input.
	ValidationFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ConfigFailed, message, cause)
}

// NewResolveError creates a version resolution error.
func NewResolveError(message string, cause error) *AppError {
	return NewAppError(ResolveFailed, message, cause)
}

// NewParseError creates a version parse error.
func NewParseError(message string, cause error) *AppError {
	return NewAppError(ParseFailed, message, cause)
}

// NewWriteError creates an output write error.
func NewWriteError(message string, cause error) *AppError {
	return NewAppError(WriteFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}
