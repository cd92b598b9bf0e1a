package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads the first sheet of a workbook, using its first row as header.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) ([]Record, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheetName)
	}

	normalizedHeaders := normalizeHeaders(rows[0])

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record, ok := newRecord(i+2, normalizedHeaders, row)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
