package table

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, records [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &record))
	}
	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXReader_LoadFile(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Model", "Price", "Storage"},
		{"M1", 250, 16},
		{"M2", 200, 32},
	})

	tbl, err := NewXLSXReader().LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Model", "Price", "Storage"}, tbl.Header)
	assert.Equal(t, [][]string{{"M1", "250", "16"}, {"M2", "200", "32"}}, tbl.Rows)
}

func TestXLSXReader_PadsShortRows(t *testing.T) {
	// Trailing empty cells disappear from GetRows; the reader pads them
	// back so every row matches the header width.
	path := writeWorkbook(t, [][]any{
		{"Model", "Price", "Storage"},
		{"M1", 250},
	})

	tbl, err := NewXLSXReader().LoadFile(path)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Len(t, tbl.Rows[0], 3)
	assert.Equal(t, "", tbl.Rows[0][2])
}

func TestXLSXReader_MissingFile(t *testing.T) {
	_, err := NewXLSXReader().LoadFile(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}
