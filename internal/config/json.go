package config

import (
	"encoding/json"
	"os"

	"github.com/loanmo/crm/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	PageSize     int    `json:"page_size"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// is given via -c or -config. When neither flag is present, nothing is
// loaded. Read or unmarshal errors panic; the intended usage is
// defaults -> parseJson -> parseFlags, with later stages overriding earlier
// ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
}
