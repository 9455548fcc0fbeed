package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ROTOCLONE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: ROTOCLONE_PORT -> port,
	// ROTOCLONE_COMMENTO_ORIGIN -> commento.origin, etc.
	if err := k.Load(env.Provider("ROTOCLONE_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "ROTOCLONE_"))
		if after, ok := strings.CutPrefix(key, "commento_"); ok {
			return "commento." + after
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title is required")
	}

	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Port)
	}

	if c.CountRefreshMinutes < 0 {
		return fmt.Errorf("count_refresh_minutes must be non-negative")
	}

	if c.Commento.Origin != "" {
		u, err := url.Parse(c.Commento.Origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("commento origin %q is not a valid http(s) URL", c.Commento.Origin)
		}
		if c.Commento.Domain == "" {
			return fmt.Errorf("commento domain is required when an origin is set")
		}
	}

	return nil
}

// CommentsEnabled reports whether a Commento instance is configured.
func (c *Config) CommentsEnabled() bool {
	return c.Commento.Origin != ""
}
