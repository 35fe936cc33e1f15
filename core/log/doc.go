// Package log provides structured logging for the brouwer toolchain.
//
// Package: log
// Title: brouwer Structured Logging
// Description: Implements a leveled, structured logger with pluggable
//              output formats (JSON, text, console) and integration with
//              the brouwer error system. The parser uses it for trace
//              output of grammar productions, the CLI for diagnostics.
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
//	import brwlog "github.com/AugmentedFifth/brouwer/core/log"
//
//	logger := brwlog.NewWithConfig(brwlog.Config{
//	    Level:  brwlog.LevelDebug,
//	    Format: brwlog.FormatText,
//	    Output: os.Stderr,
//	    Name:   "brouwer",
//	})
//
//	logger.Info("parse completed", brwlog.Fields{"nodes": 42})
package log
