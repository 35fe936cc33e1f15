// File: discovery.go
// Title: Configuration File Discovery
// Description: Implements automatic discovery of brouwer configuration
//              files across conventional locations.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"

	brwerror "github.com/AugmentedFifth/brouwer/core/error"
)

// DiscoveryOptions defines options for automatic configuration file
// discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the default search locations for
// brouwer configuration files
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./configs"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "brouwer"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"brouwer", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "BROUWER",
		Required:   false,
	}
}

// Discover searches the configured locations and loads the first
// configuration file found. When none is found and the options do not
// require one, an empty configuration is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				configPath := filepath.Join(path, filename+ext)

				info, err := os.Stat(configPath)
				if err != nil || info.IsDir() {
					continue
				}

				cfg, err := LoadWithOptions(configPath, LoadOptions{
					Format:    FormatAuto,
					EnvPrefix: options.EnvPrefix,
				})
				if err != nil {
					// A file that exists but cannot load is an error,
					// not a reason to keep searching.
					return nil, brwerror.Wrap(err, "found config file but failed to load").
						WithCode(brwerror.CodeConfigError).
						WithOperation("config.Discover").
						WithDetail("configPath", configPath)
				}
				return cfg, nil
			}
		}
	}

	if options.Required {
		return nil, brwerror.New("no configuration file found").
			WithCode(brwerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("paths", options.Paths)
	}

	empty := NewFromMap(nil)
	empty.envPrefix = options.EnvPrefix
	return empty, nil
}
