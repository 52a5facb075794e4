package settings

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

func TestDirWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "features", "auth")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "feature.settings"), []byte("Library    Collections\n"), 0644))

	assert.Equal(t, root, Dir(nested))
}

func TestDirWithoutSettingsReturnsStart(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, Dir(dir))
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	content := []byte("Library    OperatingSystem\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, FeatureSettings), content, 0644))

	data, err := Read(dir, FeatureSettings)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestReadFallsBackToWorkingDirectory(t *testing.T) {
	cwd := t.TempDir()
	content := []byte("Library    Collections\n")
	require.NoError(t, os.WriteFile(filepath.Join(cwd, ResourceSettings), content, 0644))
	chdir(t, cwd)

	data, err := Read(t.TempDir(), ResourceSettings)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestReadMissingIsNotAnError(t *testing.T) {
	data, err := Read(t.TempDir(), ResourceSettings)
	require.NoError(t, err)
	assert.Nil(t, data)
}
