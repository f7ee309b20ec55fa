// Package config loads the optional checker configuration file
// (.cfgcheck.toml). The file supplies defaults for values that would
// otherwise have to be repeated on every invocation from repo hooks.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultSupportLink is printed in the failure banner when the config
// file does not override it.
const DefaultSupportLink = "go/pixel-perf-thermal-preupload"

// Config holds the decoded configuration file contents.
type Config struct {
	// FieldNames is the default vocabulary file path, used when the
	// --field_names flag is omitted.
	FieldNames string `toml:"field_names"`

	// SupportLink overrides the link shown in the failure banner.
	SupportLink string `toml:"support_link"`
}

// Link returns the support link to show in the failure banner.
func (c *Config) Link() string {
	if c == nil || strings.TrimSpace(c.SupportLink) == "" {
		return DefaultSupportLink
	}
	return c.SupportLink
}

// Loader loads checker configuration from a file path.
type Loader interface {
	Load(path string) (*Config, error)
}

// DefaultLoader reads TOML configuration from disk. A missing or empty
// path yields zero-value defaults since the config file is optional.
type DefaultLoader struct{}

func (DefaultLoader) Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return &Config{}, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to stat config file (%s): %w", path, err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config from file (%s): %w", path, err)
	}

	return &cfg, nil
}
