package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
}

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.hcl"))
	touch(t, filepath.Join(dir, "nested", "a.hcl"))
	touch(t, filepath.Join(dir, "nested", "c.yaml"))
	touch(t, filepath.Join(dir, "readme.md"))
	single := filepath.Join(dir, "nested", "a.hcl")

	files, err := FindFilesByExtension([]string{dir, single, filepath.Join(dir, "missing")}, ".hcl")

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "a.hcl"),
	}, files)
}

func TestFindFilesByExtension_MultipleExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.yaml"))
	touch(t, filepath.Join(dir, "b.yml"))
	touch(t, filepath.Join(dir, "c.hcl"))

	files, err := FindFilesByExtension([]string{dir}, ".yaml", ".yml")

	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestFindFilesByExtension_PanicsWithoutExtension(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtension([]string{"."})
	})
}
