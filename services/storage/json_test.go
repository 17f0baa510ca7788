package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakejobs-worker/internal/scraper"
)

func TestSaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fake-jobs.json")

	require.NoError(t, SaveJSON(sampleResults(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Indices are stringified keys of a single document
	var decoded map[string]scraper.Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)

	assert.Equal(t, "Senior Python Developer", decoded["0"].Title)
	assert.Equal(t, " AA", decoded["0"].Location.Region)
	assert.Equal(t, "NC", decoded["2"].URL)
}

func TestSaveJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake-jobs.json")

	require.NoError(t, SaveJSON(sampleResults(), path))

	smaller := scraper.ResultSet{
		0: {Title: "Only Job"},
	}
	require.NoError(t, SaveJSON(smaller, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Prior content is fully replaced, not merged
	var decoded map[string]scraper.Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Only Job", decoded["0"].Title)
}
