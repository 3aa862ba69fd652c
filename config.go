package elemental

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the builder settings. It can be read from a YAML file:
//
//	explicit_booleans:
//	  - contenteditable
//	  - draggable
//	  - spellcheck
type Config struct {
	// ExplicitBooleans lists the attributes that take the string "true"
	// instead of the empty string when set to boolean true.
	ExplicitBooleans []string `yaml:"explicit_booleans"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		ExplicitBooleans: []string{"contenteditable", "draggable"},
	}
}

// ParseConfig reads a YAML configuration. Keys not present keep their
// default value.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	for i, name := range cfg.ExplicitBooleans {
		cfg.ExplicitBooleans[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return cfg, nil
}

// LoadConfig reads the configuration file at path. A missing file yields
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// isExplicitBoolean compares names case-insensitively.
func (c Config) isExplicitBoolean(key string) bool {
	return slices.ContainsFunc(c.ExplicitBooleans, func(name string) bool {
		return strings.EqualFold(name, key)
	})
}
