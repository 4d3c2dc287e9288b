package email

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "attachments")
	disk, err := NewDiskStorage(dir)
	require.NoError(t, err)

	t.Run("write and remove", func(t *testing.T) {
		path, err := disk.Write("abc", []byte("%PDF-1.4"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "abc"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(data))

		require.NoError(t, disk.Remove(path))
		require.NoError(t, disk.Remove(path), "removing twice is fine")
	})

	t.Run("rejects ids that escape the directory", func(t *testing.T) {
		for _, id := range []string{"", "../x", "a/b"} {
			_, err := disk.Write(id, []byte("x"))
			assert.Error(t, err, id)
		}
	})

	t.Run("removes only old files", func(t *testing.T) {
		oldPath, err := disk.Write("old", []byte("1"))
		require.NoError(t, err)
		newPath, err := disk.Write("new", []byte("2"))
		require.NoError(t, err)

		now := time.Now()
		require.NoError(t, os.Chtimes(oldPath, now.Add(-2*time.Hour), now.Add(-2*time.Hour)))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o700))

		removed, err := disk.RemoveOlderThan(now.Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		assert.NoFileExists(t, oldPath)
		assert.FileExists(t, newPath)
		assert.DirExists(t, filepath.Join(dir, "subdir"))
	})
}
