package config

import (
	"encoding/json"
	"os"

	"github.com/dlevasseur/banque/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling.
type jsonConfig struct {
	LedgerFile   string `json:"ledger_file"`
	StatementDir string `json:"statement_dir"`
}

// parseJson overlays Config with values loaded from a JSON file named via the
// -c or -config flags. When no config flag is given the function is a no-op.
// Read or unmarshal errors panic; there is no sane way to continue with a
// half-applied config.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.LedgerFile != "" {
		cfg.LedgerFile = jc.LedgerFile
	}
	if jc.StatementDir != "" {
		cfg.StatementDir = jc.StatementDir
	}
}
