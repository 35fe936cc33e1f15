// Package error provides structured error handling for the brouwer
// toolchain.
//
// Package: error
// Title: brouwer Error Handling Framework
// Description: This package implements a structured error type with error
//              codes, severity levels, key-value details, and stack trace
//              capture. Parser failures, configuration problems, and I/O
//              errors all flow through this type so the CLI can map them
//              to exit codes and the logger can render them with full
//              context.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation
//
// Usage:
//
//	import brwerror "github.com/AugmentedFifth/brouwer/core/error"
//
//	// Create a new error with a code and details
//	err := brwerror.New("expected newline after module declaration").
//	    WithCode(brwerror.CodeSyntaxError).
//	    WithDetail("offset", 42)
//
//	// Wrap an existing error with context
//	wrapped := brwerror.Wrap(err, "parse failed").
//	    WithOperation("parser.Parse")
//
//	// Map the error to a process exit code
//	os.Exit(brwerror.GetCode(err).ExitCode())
package error
