package flagx

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// LoadJSONConfig reads the file selected by -c/-config into v. Comments and
// trailing commas are allowed in the file. It reports false when no config
// file was requested.
func LoadJSONConfig(v any) (bool, error) {
	path := JsonConfigFlags()
	if path == "" {
		return false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return true, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), v); err != nil {
		return true, fmt.Errorf("parse config %s: %w", path, err)
	}

	return true, nil
}
