package export

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"image-labeler/internal/labeling"
)

// Row is the long-form layout of the Parquet export.
type Row struct {
	Image      string `parquet:"img"`
	Label      string `parquet:"label"`
	LabelIndex int32  `parquet:"label_index"`
}

func Rows(labels []string, entries []labeling.Assignment) []Row {
	index := make(map[string]int32, len(labels))
	for i, l := range labels {
		index[l] = int32(i)
	}

	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		i, ok := index[entry.Label]
		if !ok {
			i = -1
		}
		rows = append(rows, Row{Image: entry.Image, Label: entry.Label, LabelIndex: i})
	}
	return rows
}

func WriteParquet(path string, labels []string, entries []labeling.Assignment) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}

	writer := parquet.NewGenericWriter[Row](file)
	if _, err := writer.Write(Rows(labels, entries)); err != nil {
		file.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		file.Close()
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return file.Close()
}
