package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "Chicago.csv"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o600))

	t.Run("matches nested file ignoring case", func(t *testing.T) {
		got, err := FindFile(root, "chicago.csv")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "a", "b", "Chicago.csv"), got)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := FindFile(root, "washington.csv")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := FindFile(filepath.Join(root, "nope"), "chicago.csv")
		assert.Error(t, err)
	})

	t.Run("empty name panics", func(t *testing.T) {
		assert.Panics(t, func() { _, _ = FindFile(root, "") })
	})
}
