package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXReader handles reading decision tables from Excel workbooks
type XLSXReader struct{}

// NewXLSXReader creates a new XLSX reader
func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

// LoadFile reads the first sheet of an XLSX workbook into a Table.
// Excelize drops trailing empty cells, so short rows are padded back
// out to the header width; the validator rejects the empty cells.
func (r *XLSXReader) LoadFile(path string) (*Table, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	records, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read XLSX sheet %s: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("XLSX sheet %s is empty", sheet)
	}

	header := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		for len(record) < len(header) {
			record = append(record, "")
		}
		rows = append(rows, record)
	}

	return &Table{Header: header, Rows: rows}, nil
}
