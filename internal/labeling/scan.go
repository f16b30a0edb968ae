package labeling

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ImageExtensions are matched case-insensitively against file names.
var ImageExtensions = []string{".jpg", ".png", ".jpeg"}

func IsImageFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range ImageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ScanImages returns the sorted paths of all image files directly inside dir.
// Subdirectories, including label folders, are not descended into.
func ScanImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image folder: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(paths)
	return paths, nil
}

// CreateLabelFolders makes one subfolder per label under root.
func CreateLabelFolders(root string, labels *LabelSet) error {
	for _, label := range labels.names {
		if err := os.MkdirAll(filepath.Join(root, label), 0o755); err != nil {
			return fmt.Errorf("failed to create folder for label %q: %w", label, err)
		}
	}
	return nil
}
