// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for classifying failures
//              across the brouwer toolchain. Codes drive process exit
//              status, logging severity, and error reporting.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the brouwer toolchain
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeIOError  Code = "IO_ERROR"

	// Parsing
	CodeSyntaxError   Code = "SYNTAX_ERROR"
	CodeEmptyProgram  Code = "EMPTY_PROGRAM"
	CodeLimitExceeded Code = "LIMIT_EXCEEDED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeIOError,
		CodeSyntaxError, CodeEmptyProgram, CodeLimitExceeded,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeIOError:
		return "io"
	case CodeSyntaxError, CodeEmptyProgram, CodeLimitExceeded:
		return "parse"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit code the CLI uses for this error
// code. A structurally empty program is distinguished from all other
// failures.
func (c Code) ExitCode() int {
	switch c {
	case CodeEmptyProgram:
		return 2
	default:
		return 1
	}
}
