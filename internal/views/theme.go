package views

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// LoadTheme reads a Fyne JSON theme file.
func LoadTheme(path string) (fyne.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	th, err := theme.FromJSON(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	return th, nil
}
