// Package config provides configuration management for the brouwer
// toolchain.
//
// Package: config
// Title: brouwer Configuration Management
// Description: Implements loading, parsing, and accessing configuration
//              data from TOML and YAML files with environment variable
//              overrides, dot-notation access, validation rules, file
//              discovery, and change watching via fsnotify.
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
//	import brwconfig "github.com/AugmentedFifth/brouwer/core/config"
//
//	cfg, err := brwconfig.Load("brouwer.toml")
//	if err != nil {
//	    return err
//	}
//
//	maxDepth := cfg.GetIntDefault("parser.max_depth", 10000)
//	level := cfg.GetStringDefault("log.level", "info")
package config
