// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so logging and
//              reporting can prioritize them appropriately.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that does not affect core
	// functionality. Examples: invalid input in a single source file,
	// an empty program.
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but
	// has workarounds. Examples: a missing optional configuration file,
	// rejected flag values.
	SeverityMedium

	// SeverityHigh indicates a serious error that prevents the current
	// operation from completing. Examples: unreadable source files,
	// exceeded parser limits.
	SeverityHigh

	// SeverityCritical indicates an internal error that should never
	// occur during normal operation.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the default severity level for an
// error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeIOError, CodeLimitExceeded:
		return SeverityHigh

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	case CodeSyntaxError, CodeEmptyProgram,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
