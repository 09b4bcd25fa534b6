// Package errors provides the error taxonomy used by linelint.
// It extends Go's standard error handling with structured error codes
// and context preservation so the command line driver can decide how to abort.
package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation,
	// such as a missing required command line flag.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Resource errors.

	// CodeNotFound indicates a requested file or directory does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeIO indicates a file could not be opened, read, or decoded.
	CodeIO ErrorCode = "IO_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
