package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sooscli/internal/dataprocessing"
	apperrors "sooscli/internal/errors"
)

// CSVWriter exports tabular breakdowns derived from a report run.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance. A nil logger falls back to
// slog.Default.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	Separator rune
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	w.logger.Info("writing CSV file",
		slog.String("path", filePath),
		slog.Int("record_count", len(options.Records)))

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewExportError(filePath, err)
		}
	}

	file, err := os.Create(filePath)
	if err != nil {
		return apperrors.NewExportError(filePath, err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8.
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return apperrors.NewExportError(filePath, err)
		}
	}

	writer := csv.NewWriter(file)
	if options.Separator != 0 {
		writer.Comma = options.Separator
	}
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return apperrors.NewExportError(filePath, err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return apperrors.NewExportError(filePath, fmt.Errorf("record %d: %w", i, err))
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewExportError(filePath, err)
	}
	return nil
}

// WriteRevenueBreakdown writes the per-product revenue accumulation as a CSV
// with columns [ProductID, Name, Revenue], preserving entry order.
func (w *CSVWriter) WriteRevenueBreakdown(filePath string, sep rune, entries []dataprocessing.RevenueEntry) error {
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, []string{e.ProductID, e.Name, formatFloat(e.Revenue)})
	}
	return w.WriteCSV(filePath, WriteOptions{
		Headers:   []string{"ProductID", "Name", "Revenue"},
		Records:   records,
		Separator: sep,
		BOMPrefix: true,
	})
}
