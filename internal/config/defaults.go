package config

// DefaultExcludes are glob patterns skipped during content scanning by
// default.
var DefaultExcludes = []string{
	"drafts/**",
	"*.draft.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:               "The Rotoclone Zone",
		Description:         "It's The Rotoclone Zone",
		BaseURL:             "http://localhost:8000",
		ContentDir:          "content",
		OutputDir:           "public",
		DataDir:             ".rotoclone",
		Port:                8000,
		Include:             []string{"**/*.md"},
		Exclude:             DefaultExcludes,
		CountRefreshMinutes: 10,
	}
}
