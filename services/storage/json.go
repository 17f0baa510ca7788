package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"fakejobs-worker/internal/scraper"
	"fakejobs-worker/pkg/errors"
)

// SaveJSON serializes the entire result set as a single indented document,
// indices as keys, fully overwriting any prior file at path. Parent
// directories are created as needed.
func SaveJSON(results scraper.ResultSet, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.NewStorage("json", "create output directory", err)
		}
	}

	data, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return errors.NewStorage("json", "marshal result set", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewStorage("json", "write output file", err)
	}

	return nil
}
