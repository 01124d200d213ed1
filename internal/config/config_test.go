package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "data/applications.csv", cfg.Data.Path)
	assert.Equal(t, "default", cfg.Data.LabelColumn)
	assert.Equal(t, 0.7, cfg.Data.TrainShare)
	assert.Equal(t, int64(42), cfg.Data.Seed)
	assert.Equal(t, "svm", cfg.Model.Algo)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("LABEL_COLUMN", "churned")
	t.Setenv("TRAIN_SHARE", "0.8")

	cfg := Default()
	assert.Equal(t, "churned", cfg.Data.LabelColumn)
	assert.Equal(t, 0.8, cfg.Data.TrainShare)
}

func TestLoadYAMLOverlay(t *testing.T) {
	yml := `
data:
  path: /srv/datasets/loans.csv
  seed: 7
model:
  algo: logreg
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/datasets/loans.csv", cfg.Data.Path)
	assert.Equal(t, int64(7), cfg.Data.Seed)
	assert.Equal(t, "logreg", cfg.Model.Algo)
	// untouched fields keep their defaults
	assert.Equal(t, "default", cfg.Data.LabelColumn)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Data.Path, cfg.Data.Path)
}
