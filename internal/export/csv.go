package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"image-labeler/internal/labeling"
)

// OneHot returns a vector over labels with a 1 at label's index. A label
// outside the set yields all zeros.
func OneHot(labels []string, label string) []int {
	vec := make([]int, len(labels))
	for i, l := range labels {
		if l == label {
			vec[i] = 1
			break
		}
	}
	return vec
}

// Records builds the header and one row per assignment.
func Records(labels []string, entries []labeling.Assignment) [][]string {
	records := make([][]string, 0, len(entries)+1)

	header := make([]string, 0, len(labels)+1)
	header = append(header, "img")
	header = append(header, labels...)
	records = append(records, header)

	for _, entry := range entries {
		row := make([]string, 0, len(labels)+1)
		row = append(row, entry.Image)
		for _, v := range OneHot(labels, entry.Label) {
			row = append(row, strconv.Itoa(v))
		}
		records = append(records, row)
	}
	return records
}

func WriteCSV(w io.Writer, labels []string, entries []labeling.Assignment) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(Records(labels, entries)); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return records, nil
}
