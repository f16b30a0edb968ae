package labeling

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeImages creates small placeholder files under dir and returns their
// paths in sorted order.
func writeImages(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("img:"+name), 0o644))
		paths = append(paths, path)
	}
	return paths
}

func mustLabels(t *testing.T, names ...string) *LabelSet {
	t.Helper()
	set, err := NewLabelSet(names)
	require.NoError(t, err)
	return set
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

type recordingExecutor struct {
	effects []Effect
	err     error
}

func (r *recordingExecutor) Apply(effect Effect) error {
	r.effects = append(r.effects, effect)
	return r.err
}
