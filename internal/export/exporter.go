package export

import (
	"fmt"
	"os"
	"path/filepath"

	"image-labeler/internal/labeling"
	"image-labeler/internal/logger"
)

const (
	OutputDir = labeling.OutputFolder

	// ManualName is used by the "Generate csv" action.
	ManualName = "assigned_classes"
	// AutoName is used by the export that runs when the session ends.
	AutoName = "assigned_classes_automatically_generated"
)

type Options struct {
	XLSX    bool
	Parquet bool
}

// Result describes what an export produced. Secondary format failures are
// recorded here instead of failing the export.
type Result struct {
	CSVPath     string
	XLSXPath    string
	ParquetPath string
	Rows        int
	XLSXErr     error
	ParquetErr  error
}

// Message is the one-line summary shown after an export.
func (r *Result) Message() string {
	msg := fmt.Sprintf("csv saved to: %s", r.CSVPath)
	if r.XLSXErr != nil {
		msg += " (generating xlsx file failed)"
	}
	if r.ParquetErr != nil {
		msg += " (generating parquet file failed)"
	}
	return msg
}

type Exporter struct {
	logger logger.Logger
}

func NewExporter(log logger.Logger) *Exporter {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Exporter{logger: log}
}

// Export writes <root>/output/<name>.csv and, when asked, the xlsx and
// parquet siblings. Only CSV failures are returned as errors.
func (e *Exporter) Export(root, name string, labels []string, entries []labeling.Assignment, opts Options) (*Result, error) {
	dir := filepath.Join(root, OutputDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	result := &Result{
		CSVPath: filepath.Join(dir, name+".csv"),
		Rows:    len(entries),
	}

	if err := writeCSVFile(result.CSVPath, labels, entries); err != nil {
		return nil, err
	}

	e.logger.Info("Exporter", "csv saved", map[string]interface{}{
		"path": result.CSVPath,
		"rows": result.Rows,
	})

	if opts.XLSX {
		path := filepath.Join(dir, name+".xlsx")
		if err := CSVToXLSX(result.CSVPath, path); err != nil {
			result.XLSXErr = err
			e.logger.Error("Exporter", fmt.Errorf("generating xlsx file failed: %w", err), map[string]interface{}{
				"path": path,
			})
		} else {
			result.XLSXPath = path
		}
	}

	if opts.Parquet {
		path := filepath.Join(dir, name+".parquet")
		if err := WriteParquet(path, labels, entries); err != nil {
			result.ParquetErr = err
			e.logger.Error("Exporter", fmt.Errorf("generating parquet file failed: %w", err), map[string]interface{}{
				"path": path,
			})
		} else {
			result.ParquetPath = path
		}
	}

	return result, nil
}

func writeCSVFile(path string, labels []string, entries []labeling.Assignment) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}

	if err := WriteCSV(file, labels, entries); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
