package labeling

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanImages(t *testing.T) {
	dir := t.TempDir()
	writeImages(t, dir, "b.PNG", "a.jpg", "c.jpeg", "notes.txt", "d.JPG", "e.gif")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "cat.jpg"), 0o755))

	paths, err := ScanImages(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.PNG"),
		filepath.Join(dir, "c.jpeg"),
		filepath.Join(dir, "d.JPG"),
	}, paths)
}

func TestScanImagesMissingDir(t *testing.T) {
	_, err := ScanImages(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestCreateLabelFolders(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, CreateLabelFolders(dir, mustLabels(t, "cat", "dog")))
	// second call is fine on existing folders
	require.NoError(t, CreateLabelFolders(dir, mustLabels(t, "cat", "dog")))

	for _, label := range []string{"cat", "dog"} {
		info, err := os.Stat(filepath.Join(dir, label))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
