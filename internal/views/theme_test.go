package views

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadThemeMissingFile(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "theme.json"))
	assert.Error(t, err)
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Colors":{"primary":"#3cb44b"}}`), 0o644))

	th, err := LoadTheme(path)
	require.NoError(t, err)
	assert.NotNil(t, th)
}
