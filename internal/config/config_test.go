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
	assert.Equal(t, DefaultSnapshotDir, cfg.Snapshot.Dir)
	assert.False(t, cfg.Snapshot.Update)
	assert.Empty(t, cfg.Snapshot.S3.Bucket)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
snapshot:
  dir: goldens
  update: true
  s3:
    bucket: ci-goldens
    prefix: wctest/
serialize:
  omitShadow: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "goldens", cfg.Snapshot.Dir)
	assert.True(t, cfg.Snapshot.Update)
	assert.Equal(t, "ci-goldens", cfg.Snapshot.S3.Bucket)
	assert.Equal(t, "wctest/", cfg.Snapshot.S3.Prefix)
	assert.True(t, cfg.Serialize.OmitShadow)
	assert.False(t, cfg.Serialize.Compact)
}

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("snapshot:\n  update: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSnapshotDir, cfg.Snapshot.Dir)
	assert.True(t, cfg.Snapshot.Update)
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("snapshot: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	assert.Error(t, err)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadFromWorkingDirDefaultsWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := LoadFromWorkingDir()
	require.NoError(t, err)
	assert.Equal(t, DefaultSnapshotDir, cfg.Snapshot.Dir)
}

func TestLoadFromWorkingDirSearchesUp(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName),
		[]byte("snapshot:\n  dir: from-parent\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	cfg, err := LoadFromWorkingDir()
	require.NoError(t, err)
	assert.Equal(t, "from-parent", cfg.Snapshot.Dir)
}
