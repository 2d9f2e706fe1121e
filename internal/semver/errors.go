package semver

import "fmt"

// ParseErrorType categorizes version parse errors.
type ParseErrorType int

const (
	// NotNumeric indicates a version component is not a base-10 integer.
	NotNumeric ParseErrorType = iota
	// OutOfRange indicates a component does not fit the 8-bit packing width.
	OutOfRange
	// Malformed indicates the string is not a strict semantic version.
	Malformed
)

// ParseError reports a version string that cannot be decomposed.
type ParseError struct {
	// Type categorizes the error.
	Type ParseErrorType
	// Input is the full version string being parsed.
	Input string
	// Component names the offending part (major, minor, patch, tweak).
	Component string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Type {
	case NotNumeric:
		return fmt.Sprintf("invalid version %q: %s component is not numeric: %v", e.Input, e.Component, e.Cause)
	case OutOfRange:
		return fmt.Sprintf("invalid version %q: %s must be in range 0-%d", e.Input, e.Component, MaxComponent)
	default:
		if e.Cause != nil {
			return fmt.Sprintf("invalid version %q: %v", e.Input, e.Cause)
		}
		return fmt.Sprintf("invalid version %q", e.Input)
	}
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *ParseError) Unwrap() error {
	return e.Cause
}
