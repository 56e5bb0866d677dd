// Package config provides reading and writing of licenser configuration.
// Supports both global (~/.licenser/config.yaml) and local (.licenser/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to the file the config was read from, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.licenser/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .licenser/config.yaml
	ScopeLocal
)

// Author represents the copyright holder recorded in generated licenses
// and injected headers.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// License holds license-selection preferences.
type License struct {
	Default string `yaml:"default,omitempty"`
}

// Config contains configuration for licenser.
type Config struct {
	Author  Author  `yaml:"author,omitempty"`
	License License `yaml:"license,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(".licenser", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file:
// ~/.licenser/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".licenser", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
