package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// ReadFile parses an uploaded bulk file into raw rows, dispatching on
// the file extension. CSV and XLSX are accepted; XLSX reads the first
// sheet only. The first row is always treated as the header row.
func ReadFile(filename string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx", ".xls":
		return ReadXLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return rowsFromRecords(records), nil
}

func ReadXLSX(r io.Reader) ([]Row, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	records, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	return rowsFromRecords(records), nil
}

func rowsFromRecords(records [][]string) []Row {
	if len(records) < 2 {
		return nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)

	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}

		row := make(Row, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(record) {
				row[key] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
