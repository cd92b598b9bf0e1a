package importer

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Reader interface {
	Read(path string) ([]Record, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch normalizeHeader(format) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

// Load reads the table at path. When format is empty it is inferred from the
// file extension.
func Load(path, format string) ([]Record, error) {
	sourceFormat, err := InferFormat(path, format)
	if err != nil {
		return nil, err
	}
	reader, err := ReaderForFormat(sourceFormat)
	if err != nil {
		return nil, err
	}
	return reader.Read(path)
}

func InferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm":
		return "excel", nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}
