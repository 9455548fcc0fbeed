package cmd

import (
	"fmt"

	"github.com/rotoclone/rotoclone-zone/internal/config"
	"github.com/rotoclone/rotoclone-zone/internal/site"
)

// loadConfig reads and validates the configuration file. This is the
// shared version used by the serve and build commands.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// siteBuilder creates the content scanner for the configured site.
func siteBuilder(cfg *config.Config) *site.Builder {
	b := site.NewBuilder(cfg.ContentDir, cfg.Title, cfg.Description)
	b.Include = cfg.Include
	b.Exclude = cfg.Exclude
	return b
}
