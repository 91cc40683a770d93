package datasets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The shipped data files are part of the contract, so load the real ones.
func TestLoadFromRepositoryData(t *testing.T) {
	tables, err := LoadFrom(filepath.Join("..", "..", "data"))
	require.NoError(t, err)

	assert.Greater(t, tables.Distances.Count(), 0)
	assert.Contains(t, tables.Holidays.Years(), 2026)
	assert.Greater(t, tables.Stations.Count(), 0)
}

func TestLoadFromMissingDirectory(t *testing.T) {
	_, err := LoadFrom(filepath.Join("testdata", "nonexistent"))
	assert.Error(t, err)
}

func TestDirectoryDefault(t *testing.T) {
	t.Setenv("OPALTRIP_DATA_DIR", "")

	assert.Equal(t, "data", Directory())
}

func TestDirectoryOverride(t *testing.T) {
	t.Setenv("OPALTRIP_DATA_DIR", "/srv/opaltrip/data")

	assert.Equal(t, "/srv/opaltrip/data", Directory())
}
