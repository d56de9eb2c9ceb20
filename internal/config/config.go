// Package config loads runtime settings for the CRM CLI.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: path of the local SQLite database file.
//   - PageSize: initial number of enquiry rows per page.
type Config struct {
	DatabasePath string
	PageSize     int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "loanmo.db"
	c.PageSize = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
