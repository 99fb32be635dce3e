package sqlfront

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kynessa/sqlfront/parser"
)

func TestDefaultConfigMatchesParserDefaults(t *testing.T) {
	c := DefaultConfig()
	d := parser.DefaultConfig()
	assert.Equal(t, d.MaxDepth, c.MaxDepth)
	assert.Equal(t, d.StrictANSI, c.StrictANSI)
	assert.Equal(t, d.AllowExtensions, c.AllowExtensions)
	assert.Equal(t, "production", c.Mode)
}

func TestLoadConfigFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte("mode: debug\nmax_depth: 50\nstrict_ansi: true\n"), 0o644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Mode)
	assert.Equal(t, 50, cfg.MaxDepth)
	assert.True(t, cfg.StrictANSI)
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().MaxDepth, cfg.MaxDepth)
}

func TestLoadConfigEnvOverridesWinOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 50\n"), 0o644))

	t.Setenv("SQLFRONT_MAX_DEPTH", "200")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.MaxDepth)
}

func TestToParserConfigDebugMode(t *testing.T) {
	c := ParserConfig{Mode: "debug", MaxDepth: 10, StrictANSI: true, AllowExtensions: false}
	pc := c.ToParserConfig()
	assert.Equal(t, parser.ModeDebug, pc.Mode)
	assert.Equal(t, 10, pc.MaxDepth)
	assert.True(t, pc.StrictANSI)
	assert.False(t, pc.AllowExtensions)
}
