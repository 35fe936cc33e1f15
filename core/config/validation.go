// File: validation.go
// Title: Configuration Validation
// Description: Implements rule-based validation of configuration values
//              so malformed settings are rejected before the parser or
//              CLI consume them.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package config

import (
	brwerror "github.com/AugmentedFifth/brouwer/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool          // Whether the key must be present
	Type     string        // Expected type: "string", "int", "bool"
	Min      int           // Minimum value (ints only, ignored otherwise)
	Max      int           // Maximum value (ints only, 0 = unbounded)
	OneOf    []string      // Allowed values (strings only)
	Default  interface{}   // Default applied when the key is absent
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// Validate checks the configuration against the given rules, applying
// defaults for absent keys. The first violated rule aborts validation.
func (c *Config) Validate(rules ValidationRules) error {
	for key, rule := range rules {
		if err := c.validateKey(key, rule); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateKey(key string, rule ValidationRule) error {
	if !c.Has(key) {
		if rule.Required {
			return brwerror.Newf("required config key missing: %s", key).
				WithCode(brwerror.CodeConfigError).
				WithOperation("config.Validate").
				WithDetail("key", key)
		}
		if rule.Default != nil {
			c.Set(key, rule.Default)
		}
		return nil
	}

	switch rule.Type {
	case "int":
		value, ok := c.GetInt(key)
		if !ok {
			return brwerror.Newf("config key %s must be an integer", key).
				WithCode(brwerror.CodeInvalidConfig).
				WithOperation("config.Validate").
				WithDetail("key", key)
		}
		if value < rule.Min {
			return brwerror.Newf("config key %s below minimum %d", key, rule.Min).
				WithCode(brwerror.CodeValueOutOfRange).
				WithOperation("config.Validate").
				WithDetail("key", key).
				WithDetail("value", value)
		}
		if rule.Max > 0 && value > rule.Max {
			return brwerror.Newf("config key %s above maximum %d", key, rule.Max).
				WithCode(brwerror.CodeValueOutOfRange).
				WithOperation("config.Validate").
				WithDetail("key", key).
				WithDetail("value", value)
		}

	case "bool":
		if _, ok := c.GetBool(key); !ok {
			return brwerror.Newf("config key %s must be a boolean", key).
				WithCode(brwerror.CodeInvalidConfig).
				WithOperation("config.Validate").
				WithDetail("key", key)
		}

	case "string", "":
		value, ok := c.GetString(key)
		if !ok {
			return brwerror.Newf("config key %s must be a string", key).
				WithCode(brwerror.CodeInvalidConfig).
				WithOperation("config.Validate").
				WithDetail("key", key)
		}
		if len(rule.OneOf) > 0 && !contains(rule.OneOf, value) {
			return brwerror.Newf("config key %s has invalid value %q", key, value).
				WithCode(brwerror.CodeInvalidConfig).
				WithOperation("config.Validate").
				WithDetail("key", key).
				WithDetail("allowed", rule.OneOf)
		}
	}

	return nil
}

func contains(values []string, needle string) bool {
	for _, v := range values {
		if v == needle {
			return true
		}
	}
	return false
}
