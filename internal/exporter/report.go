package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sooscli/internal/dataprocessing"
	apperrors "sooscli/internal/errors"
)

// Fixed frame of the informe.txt layout this tool has always produced.
const (
	reportTitle     = "--- INFORME DE GESTIÓN SUPERMERCADO SOOS ---"
	reportSeparator = "\n============================================\n"
)

// BuildReport assembles the report lines for the given summary: title,
// separator, the four findings, closing separator.
func BuildReport(sum dataprocessing.Summary) []string {
	return []string{
		reportTitle,
		reportSeparator,
		fmt.Sprintf("El producto más caro es **%s**.", sum.MostExpensiveName),
		fmt.Sprintf("El valor total de la bodega es de **$%s**.", formatMoney(sum.InventoryValue)),
		fmt.Sprintf("El producto con más ingresos es **%s**.", sum.TopRevenueName),
		fmt.Sprintf("En el período de **%s**, el total de ventas es de **$%s**.",
			formatPeriod(sum.Month, sum.Year), formatMoney(sum.PeriodSales)),
		reportSeparator,
	}
}

// WriteReport writes the report lines newline-joined to path, overwriting any
// previous report. Parent directories are created as needed.
func WriteReport(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewExportError(path, err)
		}
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return apperrors.NewExportError(path, err)
	}
	return nil
}
