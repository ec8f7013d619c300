// Package config handles runtime configuration for the banking CLI:
// defaults, an optional JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the CLI.
//
// Fields:
//   - LedgerFile: path of the JSON snapshot holding the full account set.
//   - StatementDir: directory where exported statements are written.
type Config struct {
	LedgerFile   string
	StatementDir string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.LedgerFile = "banque.json"
	c.StatementDir = "."
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
