package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test;
// testing.T.Chdir requires Go 1.24 and this module builds on 1.21.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Language)
	assert.Empty(t, cfg.Output)
	assert.Empty(t, cfg.SettingsDir)
}

func TestLoadReadsProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := "language: nl\noutput: build/robot\nsettings_dir: conf\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gherkin2robotframework.yml"), []byte(content), 0644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "nl", cfg.Language)
	assert.Equal(t, "build/robot", cfg.Output)
	assert.Equal(t, "conf", cfg.SettingsDir)
}
