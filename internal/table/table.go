// Package table loads and writes the tabular data consumed by the scorer.
// A table is a header row plus raw string cells; the first column is the
// alternative identifier and is never interpreted numerically.
package table

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table holds a loaded decision table as raw cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// Columns returns the total column count, including the identifier column.
func (t *Table) Columns() int {
	return len(t.Header)
}

// RowCount returns the number of data rows (alternatives).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// AppendColumn adds a named column with one cell per existing row.
func (t *Table) AppendColumn(name string, cells []string) error {
	if len(cells) != len(t.Rows) {
		return fmt.Errorf("column %s has %d cells, table has %d rows", name, len(cells), len(t.Rows))
	}
	t.Header = append(t.Header, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], cells[i])
	}
	return nil
}

// Load reads a decision table from path, picking the reader by file
// extension. Supported formats are .csv and .xlsx.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVReader().LoadFile(path)
	case ".xlsx":
		return NewXLSXReader().LoadFile(path)
	default:
		return nil, fmt.Errorf("input file must be either .csv or .xlsx format")
	}
}
