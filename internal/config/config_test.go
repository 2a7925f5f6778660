package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{"."}, cfg.Paths)
	assert.Equal(t, "tag", cfg.Sigils.Tag)
	assert.Equal(t, "ref", cfg.Sigils.Ref)
	assert.Equal(t, "file", cfg.Sigils.File)
	assert.Equal(t, "dir", cfg.Sigils.Dir)
	assert.Contains(t, cfg.ExcludeDirs, ".git")
	assert.Zero(t, cfg.Jobs)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogDir)
	assert.False(t, cfg.FailIfAnyUnused)
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_OverlaysFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".xref.yaml")
	content := `
paths:
  - src
  - docs
sigils:
  tag: anchor
jobs: 4
log_level: debug
fail_if_any_unused: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"src", "docs"}, cfg.Paths)
	assert.Equal(t, "anchor", cfg.Sigils.Tag)
	assert.Equal(t, "ref", cfg.Sigils.Ref, "unset sigils keep their defaults")
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.FailIfAnyUnused)
	assert.Contains(t, cfg.ExcludeDirs, ".git", "unset excludes keep their defaults")
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".xref.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
