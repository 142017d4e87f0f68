package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/devkami/kami-sales-dashboard/internal/sanitize"
)

// readCSV reads a semicolon-delimited export with a header row. Returns the
// raw records and the count of skipped (empty) rows.
func readCSV(path string) ([]sanitize.Record, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	// encoding/csv silently drops fully blank lines before they reach the
	// record loop, so they are counted up front to keep the skip
	// accounting honest. Delimiter-only rows still arrive as records and
	// are counted below.
	skipped := countBlankLines(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read header: %w", err)
	}
	header = normalizeHeader(header)

	var records []sanitize.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read row: %w", err)
		}
		if emptyRow(row) {
			skipped++
			continue
		}
		records = append(records, zipRecord(header, row))
	}
	return records, skipped, nil
}

// countBlankLines counts the fully empty physical lines the csv reader
// swallows. Whitespace-only lines still reach the record loop and are not
// counted here. The file-terminating newline does not open a line.
func countBlankLines(data []byte) int {
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	count := 0
	for _, line := range lines {
		if line == "" || line == "\r" {
			count++
		}
	}
	return count
}

// readXLSX reads the first sheet of a workbook with the same header
// contract as the CSV export.
func readXLSX(path string) ([]sanitize.Record, int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 1 {
		return nil, 0, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	header := normalizeHeader(rows[0])

	var records []sanitize.Record
	skipped := 0
	for _, row := range rows[1:] {
		if emptyRow(row) {
			skipped++
			continue
		}
		records = append(records, zipRecord(header, row))
	}
	return records, skipped, nil
}
