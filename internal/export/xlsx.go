package export

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// CSVToXLSX copies every cell of the CSV at csvPath into the first sheet of
// a new workbook at xlsxPath. Cells stay strings.
func CSVToXLSX(csvPath, xlsxPath string) error {
	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open csv: %w", err)
	}
	defer file.Close()

	records, err := ReadCSV(file)
	if err != nil {
		return err
	}

	book := excelize.NewFile()
	defer book.Close()

	sheet := book.GetSheetName(0)
	for r, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(record))
		for c, value := range record {
			row[c] = value
		}
		if err := book.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+1, err)
		}
	}

	if err := book.SaveAs(xlsxPath); err != nil {
		return fmt.Errorf("failed to save xlsx: %w", err)
	}
	return nil
}
