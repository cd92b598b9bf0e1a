package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVReader reads comma-separated tables with a header row. Spreadsheet
// exports often carry a byte order mark, so input is decoded with BOM
// detection (UTF-8 by default, UTF-16 when marked).
type CSVReader struct{}

func (r *CSVReader) Read(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(file, decoder))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	normalizedHeaders := normalizeHeaders(headers)

	records := make([]Record, 0, 128)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		// Physical line number; the csv reader drops blank lines.
		rowNumber, _ := reader.FieldPos(0)
		record, ok := newRecord(rowNumber, normalizedHeaders, row)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
