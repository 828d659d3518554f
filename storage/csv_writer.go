package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"spacex-scraper/models"
	"spacex-scraper/utils"
)

// CSVWriter serializes tables as comma-delimited text files. Export is the
// terminal step of a pipeline: both outcomes are logged here and a write
// failure never propagates as anything but the returned error.
type CSVWriter struct {
	logger *utils.Logger
}

// NewCSVWriter creates a CSVWriter with the given logger.
func NewCSVWriter(logger *utils.Logger) *CSVWriter {
	return &CSVWriter{logger: logger}
}

// Write creates (or truncates) the file at path and writes the header row
// followed by one data row per record, in table order. Intermediate
// directories are created automatically.
func (w *CSVWriter) Write(table *models.Table, path string) error {
	if err := w.write(table, path); err != nil {
		w.logger.Error("[csv] Export to %s failed: %v", path, err)
		return err
	}
	w.logger.Info("[csv] Exported %d rows to %s", len(table.Rows), path)
	return nil
}

func (w *CSVWriter) write(table *models.Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	return f.Close()
}
