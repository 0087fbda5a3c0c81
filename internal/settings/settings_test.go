package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaultsWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	raw, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, raw.K)
	assert.Equal(t, 10.0, raw.Delta)
	assert.Equal(t, "info", raw.LogLevel)
}

func TestLoadReadsExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("k: 20\ndelta: 12.5\nlog_level: debug\n"), 0o644))

	raw, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, raw.K)
	assert.Equal(t, 12.5, raw.Delta)
	assert.Equal(t, "debug", raw.LogLevel)
	// Unset fields still fall back to defaults.
	assert.Equal(t, 3, raw.DCTPairRow)
}

func TestLoadRejectsMissingExplicitFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}
