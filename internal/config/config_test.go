package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad verifies TOML values override defaults while unset fields
// keep theirs.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biocalc.toml")
	content := []byte("[server]\naddr = \":9000\"\n\n[data]\nworkbook_path = \"fatores.xlsx\"\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "fatores.xlsx", cfg.Data.WorkbookPath)
	assert.Equal(t, "Fatores", cfg.Data.FactorsSheet)
	assert.Equal(t, "biocalc.db", cfg.Data.DatabasePath)
}

// TestLoadEmptyPath returns defaults.
func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestLoadMissingFile surfaces the error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
