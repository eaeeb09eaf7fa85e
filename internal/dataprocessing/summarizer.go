package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Sentinel names used in report figures when no product can be named.
const (
	// NameNone is reported when there is no product to name.
	NameNone = "N/A"
	// NameError is reported when the items source cannot be read at all.
	NameError = "ERROR"
)

// Summarizer computes the aggregate figures of the management report. All
// aggregations are single-pass scans; malformed rows are skipped, never fatal.
type Summarizer struct {
	logger *slog.Logger
	sep    rune
}

// NewSummarizer creates a summarizer. A nil logger falls back to slog.Default.
func NewSummarizer(logger *slog.Logger, sep rune) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger, sep: sep}
}

// MostExpensiveProduct returns the name and unit price of the highest-priced
// product. Ties resolve to the first product encountered in the source. An
// empty inventory yields (NameNone, 0).
func (s *Summarizer) MostExpensiveProduct(inv *Inventory) (string, float64) {
	if inv.Len() == 0 {
		return NameNone, 0
	}

	var best Product
	found := false
	for _, p := range inv.Products() {
		if !found || p.Price > best.Price {
			best = p
			found = true
		}
	}

	s.logger.Info("most expensive product",
		slog.String("product", best.Name),
		slog.Float64("price", best.Price))

	return best.Name, best.Price
}

// InventoryValue returns the total warehouse value: the sum of price times
// quantity over all products. An empty inventory yields 0.
func (s *Summarizer) InventoryValue(inv *Inventory) float64 {
	var total float64
	for _, p := range inv.Products() {
		total += p.Price * float64(p.Quantity)
	}
	return total
}

// RevenueEntry is the accumulated revenue of one product, in order of first
// appearance in the items source.
type RevenueEntry struct {
	ProductID string
	Name      string
	Revenue   float64
}

// RevenueByProduct scans the items file and accumulates revenue per product id
// (unit price from the inventory times quantity sold). Items referencing ids
// absent from the inventory contribute nothing. Malformed rows are skipped.
// The returned entries preserve first-appearance order.
func (s *Summarizer) RevenueByProduct(ctx context.Context, inv *Inventory, itemsPath string) ([]RevenueEntry, error) {
	rows, warnings, err := readRows(itemsPath, s.sep)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		s.logger.WarnContext(ctx, "skipping unreadable items row", slog.String("detail", w))
	}

	totals := make(map[string]float64)
	var order []string

	for i, row := range rows {
		item, perr := parseLineItemRow(row)
		if perr != nil {
			s.logger.WarnContext(ctx, "skipping invalid items row",
				slog.Int("row", i+2),
				slog.String("reason", perr.Error()))
			continue
		}
		product, known := inv.Get(item.ProductID)
		if !known {
			// Unknown ids contribute zero revenue.
			s.logger.DebugContext(ctx, "ignoring item for unknown product",
				slog.String("product_id", item.ProductID))
			continue
		}
		if _, seen := totals[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		totals[item.ProductID] += product.Price * float64(item.Quantity)
	}

	entries := make([]RevenueEntry, 0, len(order))
	for _, id := range order {
		product, _ := inv.Get(id)
		entries = append(entries, RevenueEntry{
			ProductID: id,
			Name:      product.Name,
			Revenue:   totals[id],
		})
	}
	return entries, nil
}

// TopRevenueProduct returns the name and accumulated revenue of the product
// that generated the most income. Ties resolve to the product first encountered
// in the items source. An empty inventory or empty accumulation yields
// (NameNone, 0); a missing or unreadable items file yields (NameError, 0).
func (s *Summarizer) TopRevenueProduct(ctx context.Context, inv *Inventory, itemsPath string) (string, float64) {
	if inv.Len() == 0 {
		return NameNone, 0
	}

	entries, err := s.RevenueByProduct(ctx, inv, itemsPath)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read items file",
			slog.String("path", itemsPath),
			slog.String("error", err.Error()))
		return NameError, 0
	}
	if len(entries) == 0 {
		return NameNone, 0
	}

	best := entries[0]
	for _, e := range entries[1:] {
		if e.Revenue > best.Revenue {
			best = e
		}
	}
	return best.Name, best.Revenue
}

// SalesInPeriod scans the sales file and sums the amounts of sales dated in the
// given month and year. Rows with unparseable dates or amounts are skipped. A
// missing or unreadable file yields 0.
func (s *Summarizer) SalesInPeriod(ctx context.Context, salesPath string, month, year int) float64 {
	rows, warnings, err := readRows(salesPath, s.sep)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read sales file",
			slog.String("path", salesPath),
			slog.String("error", err.Error()))
		return 0
	}
	for _, w := range warnings {
		s.logger.WarnContext(ctx, "skipping unreadable sales row", slog.String("detail", w))
	}

	var total float64
	for _, row := range rows {
		sale, perr := parseSaleRow(row)
		if perr != nil {
			continue
		}
		if int(sale.Date.Month()) == month && sale.Date.Year() == year {
			total += sale.Amount
		}
	}
	return total
}

// parseLineItemRow converts one items row [_, product_id, quantity] into a LineItem.
func parseLineItemRow(row []string) (LineItem, error) {
	if len(row) < 3 {
		return LineItem{}, fmt.Errorf("expected 3 columns, got %d", len(row))
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return LineItem{}, fmt.Errorf("invalid quantity %q", row[2])
	}
	return LineItem{ProductID: row[1], Quantity: quantity}, nil
}

// parseSaleRow converts one sales row [_, date, amount] into a SaleRecord.
func parseSaleRow(row []string) (SaleRecord, error) {
	if len(row) < 3 {
		return SaleRecord{}, fmt.Errorf("expected 3 columns, got %d", len(row))
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return SaleRecord{}, fmt.Errorf("invalid amount %q", row[2])
	}
	date, err := ParseSaleDate(row[1])
	if err != nil {
		return SaleRecord{}, err
	}
	return SaleRecord{Date: date, Amount: amount}, nil
}
