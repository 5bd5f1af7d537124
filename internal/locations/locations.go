// Package locations provides the static Nordic place-name catalog used to fan
// out location-scoped upstream queries. The catalog is loaded once at startup
// and is read-only afterwards.
package locations

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed locations.json
var embedded []byte

// Load returns the place-name catalog. With an empty path it loads the bundled
// list; otherwise it reads a JSON array of strings from the given file.
func Load(path string) ([]string, error) {
	data := embedded
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read locations file %s: %w", path, err)
		}
		data = fileData
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("failed to parse locations JSON: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("locations list is empty")
	}

	return names, nil
}
