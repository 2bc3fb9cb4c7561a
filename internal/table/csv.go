package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVReader handles reading decision tables from CSV files
type CSVReader struct {
	comma rune
}

// NewCSVReader creates a new CSV reader with the default comma delimiter
func NewCSVReader() *CSVReader {
	return &CSVReader{comma: ','}
}

// LoadFile reads a CSV file into a Table. The first record is the header;
// every following record must have the same field count.
func (r *CSVReader) LoadFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	csvReader := csv.NewReader(file)
	csvReader.Comma = r.comma

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var rows [][]string
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		rows = append(rows, record)
	}

	return &Table{Header: header, Rows: rows}, nil
}

// CSVWriter handles writing result tables to CSV files
type CSVWriter struct {
	comma rune
}

// NewCSVWriter creates a new CSV writer with the default comma delimiter
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{comma: ','}
}

// WriteFile writes the table to path as CSV, header first. The file is
// written atomically via temp file + rename, so a failed run never
// leaves a partial output table behind.
func (w *CSVWriter) WriteFile(path string, tbl *Table) error {
	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	csvWriter.Comma = w.comma

	if err := csvWriter.Write(tbl.Header); err != nil {
		return fmt.Errorf("failed to encode CSV header: %w", err)
	}
	for _, row := range tbl.Rows {
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to encode CSV row: %w", err)
		}
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to encode CSV output: %w", err)
	}

	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// writeFileAtomic writes data atomically using temp file + rename
func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
