// internal/output/excel.go
package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelWriter appends rows to an Excel worksheet. The workbook is held in
// memory and saved on Close.
type ExcelWriter struct {
	filename string
	sheet    string
	book     *excelize.File
	nextRow  int
}

// NewExcelWriter creates an Excel writer for the given file and sheet.
func NewExcelWriter(filename, sheet string) (*ExcelWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("Excel output file is required")
	}
	if sheet == "" {
		sheet = "Sheet1"
	}

	book := excelize.NewFile()
	if sheet != "Sheet1" {
		if err := book.SetSheetName("Sheet1", sheet); err != nil {
			return nil, fmt.Errorf("failed to name worksheet: %w", err)
		}
	}

	return &ExcelWriter{
		filename: filename,
		sheet:    sheet,
		book:     book,
		nextRow:  1,
	}, nil
}

// Write implements Writer.
func (w *ExcelWriter) Write(columns []string, rows [][]string) error {
	if w.nextRow == 1 {
		if err := w.writeRow(columns); err != nil {
			return fmt.Errorf("failed to write Excel header: %w", err)
		}
	}

	for _, row := range rows {
		if err := w.writeRow(row); err != nil {
			return fmt.Errorf("failed to write Excel row: %w", err)
		}
	}
	return nil
}

func (w *ExcelWriter) writeRow(values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, w.nextRow)
	if err != nil {
		return err
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}

	if err := w.book.SetSheetRow(w.sheet, cell, &cells); err != nil {
		return err
	}
	w.nextRow++
	return nil
}

// Close saves the workbook to disk.
func (w *ExcelWriter) Close() error {
	defer w.book.Close()
	if err := w.book.SaveAs(w.filename); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}
