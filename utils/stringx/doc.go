// Package stringx provides string utility functions used across the
// brouwer toolchain.
//
// Package: stringx
// Title: String Utilities
// Description: Small, dependency-free helpers for string validation and
//              formatting that the standard library does not cover in a
//              single call. Used by the configuration loader, the error
//              reporting paths of the parser, and the CLI front end.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation
package stringx
