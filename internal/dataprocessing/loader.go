package dataprocessing

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "sooscli/internal/errors"
)

// Loader reads the products source into an Inventory.
type Loader struct {
	logger *slog.Logger
	sep    rune
}

// NewLoader creates a product loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger, sep rune) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, sep: sep}
}

// LoadProducts reads the products file at path and returns the inventory in
// encounter order plus per-row warning diagnostics. Malformed rows are skipped,
// never fatal. A missing or unreadable file returns an empty inventory together
// with the error; callers log it and proceed with downstream defaults.
//
// A path ending in .xlsx is read as a workbook (first sheet); anything else is
// read as separator-delimited text. Both share the same row format:
// [id, name, price, quantity] after a header row.
func (l *Loader) LoadProducts(ctx context.Context, path string) (*Inventory, []string, error) {
	inv := NewInventory()

	var (
		rows     [][]string
		warnings []string
		err      error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readWorkbookRows(path)
	} else {
		rows, warnings, err = readRows(path, l.sep)
	}
	if err != nil {
		return inv, warnings, err
	}

	for i, row := range rows {
		p, perr := parseProductRow(row)
		if perr != nil {
			// Data row numbering starts after the header.
			w := fmt.Sprintf("row %d: %v", i+2, perr)
			warnings = append(warnings, w)
			l.logger.WarnContext(ctx, "skipping invalid product row",
				slog.Int("row", i+2),
				slog.String("reason", perr.Error()))
			continue
		}
		inv.Add(p)
	}

	l.logger.InfoContext(ctx, "products loaded",
		slog.String("path", path),
		slog.Int("count", inv.Len()),
		slog.Int("skipped", len(warnings)))

	return inv, warnings, nil
}

// parseProductRow converts one data row into a Product.
func parseProductRow(row []string) (Product, error) {
	if len(row) < 4 {
		return Product{}, fmt.Errorf("expected 4 columns, got %d", len(row))
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return Product{}, fmt.Errorf("invalid price %q", row[2])
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil {
		return Product{}, fmt.Errorf("invalid quantity %q", row[3])
	}
	return Product{
		ID:       row[0],
		Name:     row[1],
		Price:    price,
		Quantity: quantity,
	}, nil
}

// readRows reads all data rows of a delimited file, skipping the header row.
// Lines the csv reader cannot parse are reported as warnings and skipped so a
// single bad line never aborts the scan.
func readRows(path string, sep rune) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, apperrors.NewNotFoundError(path, err)
		}
		return nil, nil, apperrors.NewStorageError("open "+path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = sep
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		rows     [][]string
		warnings []string
		line     int
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				warnings = append(warnings, fmt.Sprintf("row %d: %v", line, err))
				continue
			}
			return rows, warnings, apperrors.NewStorageError("read "+path, err)
		}
		if line == 1 {
			continue // header
		}
		rows = append(rows, record)
	}
	return rows, warnings, nil
}
