package utils

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/kmalloy/seatscan/src/models"
)

// ExportTableToCsv writes a table to <outDir>/<fname>.csv, creating the
// directory if needed. Nested values (venue blocks, performer lists, stats)
// are serialized as JSON cells.
func ExportTableToCsv(table *models.Table, outDir, fname string) (string, error) {
	// Create export directory
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		os.Mkdir(outDir, 0755)
	}

	outFile := path.Join(outDir, fmt.Sprintf("%s.csv", fname))

	file, err := os.Create(outFile)
	if err != nil {
		return "", fmt.Errorf("ExportTableToCsv: failed to create %s: %w", outFile, err)
	}

	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(table.Columns); err != nil {
		return "", fmt.Errorf("ExportTableToCsv: failed to write header: %w", err)
	}

	for _, row := range table.Rows {
		record := make([]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			record = append(record, FormatCell(row[col]))
		}

		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("ExportTableToCsv: failed to write row: %w", err)
		}
	}

	log.Infof("Exported %d rows to %s", table.Len(), outFile)

	return outFile, nil
}

// FormatCell renders a single table value for CSV or terminal output.
func FormatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		buf, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}

		return string(buf)
	}
}
