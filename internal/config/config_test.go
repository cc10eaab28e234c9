package config

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "rowdb.toml"))
	assert.NilError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "", cfg.Logging.SeqURL)
	assert.Equal(t, ".odt", cfg.Storage.Extension)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rowdb.toml")
	content := `
[logging]
level = "debug"
seq_url = "http://localhost:5341"
`
	assert.NilError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	assert.NilError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "http://localhost:5341", cfg.Logging.SeqURL)
	// Untouched sections keep their defaults.
	assert.Equal(t, ".odt", cfg.Storage.Extension)
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rowdb.toml")
	assert.NilError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"loud\"\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown log level")
}

func TestLoadRejectsBadExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rowdb.toml")
	assert.NilError(t, os.WriteFile(path, []byte("[storage]\nextension = \"odt\"\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "must start with a dot")
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rowdb.toml")
	assert.NilError(t, os.WriteFile(path, []byte("[logging\nlevel=\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}
