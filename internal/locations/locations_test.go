package locations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Bundled tests that the bundled catalog loads and contains known cities.
func TestLoad_Bundled(t *testing.T) {
	names, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, names)
	assert.Contains(t, names, "Oslo")
	assert.Contains(t, names, "Stockholm")
	assert.Contains(t, names, "Helsinki")
}

// TestLoad_OverrideFile tests loading the catalog from an explicit file path.
func TestLoad_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Narvik","Kiruna"]`), 0o644))

	names, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Narvik", "Kiruna"}, names)
}

// TestLoad_MissingFile tests that a missing override file is an error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

// TestLoad_InvalidJSON tests that malformed JSON is an error.
func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"a list"}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
