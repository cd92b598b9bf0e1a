package importer

import (
	"strings"
)

type Record struct {
	RowNumber int
	Values    map[string]string
}

func (r Record) Get(keys ...string) string {
	for _, key := range keys {
		normalized := normalizeHeader(key)
		if value, ok := r.Values[normalized]; ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}

func normalizeHeaders(headers []string) []string {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		normalized[i] = normalizeHeader(header)
	}
	return normalized
}

// newRecord pads short rows with empty values and returns false when every
// cell of the row is blank.
func newRecord(rowNumber int, headers, row []string) (Record, bool) {
	values := make(map[string]string, len(headers))
	blank := true
	for i := range headers {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		if strings.TrimSpace(value) != "" {
			blank = false
		}
		values[headers[i]] = value
	}
	if blank {
		return Record{}, false
	}
	return Record{RowNumber: rowNumber, Values: values}, true
}
