// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the "licenser config" command, while config.go
// focuses on YAML structure and loading.
package config

import (
	"fmt"
	"slices"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"license.default",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "license.default":
		return c.License.Default, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "license.default":
		c.License.Default = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":     c.Author.Name,
		"author.email":    c.Author.Email,
		"license.default": c.License.Default,
	}
}
