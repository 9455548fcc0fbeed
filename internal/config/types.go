package config

// CommentoConfig points at the Commento instance that hosts the
// blog's comment threads.
type CommentoConfig struct {
	// Origin is the base URL of the Commento server, e.g.
	// https://commento.example.com. Empty disables the comment widget.
	Origin string `yaml:"origin" koanf:"origin"`
	// Domain is the domain this site is registered under in Commento.
	Domain string `yaml:"domain" koanf:"domain"`
}

// Config is the top-level site configuration, corresponding to
// .rotoclone.yml.
type Config struct {
	Title       string   `yaml:"title" koanf:"title"`
	Description string   `yaml:"description" koanf:"description"`
	BaseURL     string   `yaml:"base_url" koanf:"base_url"`
	ContentDir  string   `yaml:"content_dir" koanf:"content_dir"`
	OutputDir   string   `yaml:"output_dir" koanf:"output_dir"`
	DataDir     string   `yaml:"data_dir" koanf:"data_dir"`
	Port        int      `yaml:"port" koanf:"port"`
	LiveReload  bool     `yaml:"live_reload" koanf:"live_reload"`
	Include     []string `yaml:"include" koanf:"include"`
	Exclude     []string `yaml:"exclude" koanf:"exclude"`

	Commento CommentoConfig `yaml:"commento" koanf:"commento"`

	// CountRefreshMinutes is how often cached comment counts are
	// refreshed from Commento. 0 disables the background refresh.
	CountRefreshMinutes int `yaml:"count_refresh_minutes" koanf:"count_refresh_minutes"`
}
