// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the main Config type and core functionality
//              for loading, parsing, and accessing configuration data
//              from TOML and YAML files with environment variable
//              support and dot-notation key access.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	brwerror "github.com/AugmentedFifth/brouwer/core/error"
	brwstringx "github.com/AugmentedFifth/brouwer/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu           sync.RWMutex
	data         map[string]interface{}
	filePath     string
	format       Format
	envPrefix    string
	lastModified time.Time

	// Watching state, see watch.go
	watching       bool
	watchDone      chan struct{}
	changeHandlers []ChangeHandler
}

// ChangeHandler is called when configuration changes are detected
type ChangeHandler func(oldConfig, newConfig *Config)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values for missing keys
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if brwstringx.IsBlank(filePath) {
		return nil, brwerror.New("config file path cannot be empty").
			WithCode(brwerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, brwerror.Newf("config file not found: %s", filePath).
			WithCode(brwerror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}
	if err != nil {
		return nil, brwerror.Wrap(err, "failed to stat config file").
			WithCode(brwerror.CodeIOError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, brwerror.Wrap(err, "failed to read config file").
			WithCode(brwerror.CodeIOError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, brwerror.Wrap(err, "failed to parse config file").
			WithCode(brwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	// Apply defaults for keys the file does not set
	if options.Defaults != nil {
		for key, value := range options.Defaults {
			if !hasPath(data, splitPath(key)) {
				setPath(data, splitPath(key), value)
			}
		}
	}

	return &Config{
		data:         data,
		filePath:     filePath,
		format:       format,
		envPrefix:    options.EnvPrefix,
		lastModified: info.ModTime(),
	}, nil
}

// NewFromMap creates a configuration from an in-memory map. Useful for
// defaults and tests.
func NewFromMap(data map[string]interface{}) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &Config{
		data:   data,
		format: FormatTOML,
	}
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content in the given format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Has returns true if the given dot-notation key is present
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.envValue(key) != "" {
		return true
	}
	return hasPath(c.data, splitPath(key))
}

// Get returns the raw value for a dot-notation key
func (c *Config) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if env := c.envValue(key); env != "" {
		return env, true
	}
	return getPath(c.data, splitPath(key))
}

// Set sets a value for a dot-notation key
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	setPath(c.data, splitPath(key), value)
}

// GetString returns a string value for the key
func (c *Config) GetString(key string) (string, bool) {
	value, ok := c.Get(key)
	if !ok {
		return "", false
	}

	switch v := value.(type) {
	case string:
		return v, true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// GetStringDefault returns a string value or the given default
func (c *Config) GetStringDefault(key, defaultValue string) string {
	if value, ok := c.GetString(key); ok {
		return value
	}
	return defaultValue
}

// GetInt returns an integer value for the key
func (c *Config) GetInt(key string) (int, bool) {
	value, ok := c.Get(key)
	if !ok {
		return 0, false
	}

	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// GetIntDefault returns an integer value or the given default
func (c *Config) GetIntDefault(key string, defaultValue int) int {
	if value, ok := c.GetInt(key); ok {
		return value
	}
	return defaultValue
}

// GetBool returns a boolean value for the key
func (c *Config) GetBool(key string) (bool, bool) {
	value, ok := c.Get(key)
	if !ok {
		return false, false
	}

	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed, true
		}
		return false, false
	default:
		return false, false
	}
}

// GetBoolDefault returns a boolean value or the given default
func (c *Config) GetBoolDefault(key string, defaultValue bool) bool {
	if value, ok := c.GetBool(key); ok {
		return value
	}
	return defaultValue
}

// Keys returns the top-level keys of the configuration
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	return keys
}

// envValue returns an environment override for the key, if configured.
// The key "parser.max_depth" with prefix "BROUWER" maps to the variable
// BROUWER_PARSER_MAX_DEPTH.
func (c *Config) envValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}

	name := c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.Getenv(name)
}

// splitPath splits a dot-notation key into path segments
func splitPath(key string) []string {
	return strings.Split(key, ".")
}

// getPath resolves a path through nested maps
func getPath(data map[string]interface{}, path []string) (interface{}, bool) {
	current := data

	for i, segment := range path {
		value, ok := current[segment]
		if !ok {
			return nil, false
		}

		if i == len(path)-1 {
			return value, true
		}

		next, ok := asMap(value)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

// hasPath reports whether a path exists in nested maps
func hasPath(data map[string]interface{}, path []string) bool {
	_, ok := getPath(data, path)
	return ok
}

// setPath sets a value at a path, creating intermediate maps as needed
func setPath(data map[string]interface{}, path []string, value interface{}) {
	current := data

	for i, segment := range path {
		if i == len(path)-1 {
			current[segment] = value
			return
		}

		next, ok := asMap(current[segment])
		if !ok {
			next = make(map[string]interface{})
			current[segment] = next
		}
		current = next
	}
}

// asMap normalizes the nested map shapes produced by the TOML and YAML
// decoders
func asMap(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		return v, true
	case map[interface{}]interface{}:
		normalized := make(map[string]interface{}, len(v))
		for key, val := range v {
			normalized[fmt.Sprintf("%v", key)] = val
		}
		return normalized, true
	default:
		return nil, false
	}
}

// deepCopyMap produces a deep copy of nested configuration data
func deepCopyMap(data map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(data))
	for k, v := range data {
		if nested, ok := asMap(v); ok {
			copied[k] = deepCopyMap(nested)
		} else {
			copied[k] = v
		}
	}
	return copied
}
