package setup

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ReadLabels reads one label per line. Lines are kept verbatim apart from
// their terminator, so blank lines survive and are caught by validation.
func ReadLabels(r io.Reader) ([]string, error) {
	var labels []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		labels = append(labels, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	return labels, nil
}

func LoadLabelsFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open labels file: %w", err)
	}
	defer file.Close()

	return ReadLabels(file)
}
