// Package csvio provides CSV file reading and writing helpers
package csvio

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/dperussina/code-library/pkg/errors"
)

// Table holds a parsed CSV file with the header row separated from data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadAll reads a CSV file and returns the header row and data rows.
// An empty file yields a parse error.
func ReadAll(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrorTypeNotFound, "file not found: %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrorTypeFile, "failed to open %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Newf(errors.ErrorTypeParse, "empty CSV file: %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrorTypeParse, "failed to read header from %s", path)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrorTypeParse, "failed to read rows from %s", path)
	}

	return &Table{Header: header, Rows: rows}, nil
}

// ReadRecords reads a CSV file into one map per row, keyed by header column.
func ReadRecords(path string) ([]map[string]string, error) {
	table, err := ReadAll(path)
	if err != nil {
		return nil, err
	}

	records := make([]map[string]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		record := make(map[string]string, len(table.Header))
		for i, col := range table.Header {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		records = append(records, record)
	}

	return records, nil
}

// WriteAll writes a header row and data rows to a CSV file, replacing any
// existing content.
func WriteAll(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if len(header) > 0 {
		if err := w.Write(header); err != nil {
			return errors.Wrapf(err, errors.ErrorTypeFile, "failed to write header to %s", path)
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to write rows to %s", path)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to flush %s", path)
	}

	return nil
}

// WriteRecords writes maps as CSV rows using the given column order.
// Missing keys become empty cells.
func WriteRecords(path string, columns []string, records []map[string]string) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = record[col]
		}
		rows = append(rows, row)
	}

	return WriteAll(path, columns, rows)
}
