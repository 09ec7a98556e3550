package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridpoint-labs/sitescout/internal/config"
	"github.com/gridpoint-labs/sitescout/internal/model"
)

func TestReadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "land.json")
	payload := `{
		"suitable_areas": [{"name": "north plot", "area_km2": 3.2, "suitability_score": 0.9}],
		"constraints": ["floodplain"],
		"land_use_distribution": {"bare_land": 0.5, "vegetation": 0.2}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	var land model.LandAnalysis
	require.NoError(t, readJSONFile(path, &land))
	require.Len(t, land.SuitableAreas, 1)
	assert.Equal(t, "north plot", land.SuitableAreas[0].Name)
	assert.InDelta(t, 0.9, land.SuitableAreas[0].SuitabilityScore, 1e-9)
	assert.Equal(t, []string{"floodplain"}, land.Constraints)
	assert.InDelta(t, 0.5, land.LandUse.BareLand, 1e-9)
}

func TestReadJSONFile_Missing(t *testing.T) {
	var land model.LandAnalysis
	err := readJSONFile(filepath.Join(t.TempDir(), "absent.json"), &land)
	assert.Error(t, err)
}

func TestReadJSONFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var land model.LandAnalysis
	err := readJSONFile(path, &land)
	assert.Error(t, err)
}

func TestStoreDSN(t *testing.T) {
	old := cfg
	t.Cleanup(func() { cfg = old })

	cfg = &config.Config{Store: config.StoreConfig{Driver: "sqlite", Path: "local.db", DatabaseURL: "postgres://x"}}
	assert.Equal(t, "local.db", storeDSN())

	cfg.Store.Driver = "postgres"
	assert.Equal(t, "postgres://x", storeDSN())
}

func TestWithOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	err := withOutput(path, func(f *os.File) error {
		return writeJSON(f, map[string]int{"score": 74})
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": 74}`, string(data))
}
