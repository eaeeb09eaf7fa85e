package app

import (
	"context"
	"fmt"
	"log/slog"

	"sooscli/internal/config"
	"sooscli/internal/dataprocessing"
	"sooscli/internal/exporter"
)

// Result messages printed to stdout. Errors are embedded in the message rather
// than surfaced as a nonzero exit status.
const (
	successFormat = "Informe generado con éxito. Se ha creado el archivo '%s'."
	failureFormat = "Error al escribir el archivo de informe: %v"
)

// Service runs the end-to-end report generation: load the products source,
// compute the four aggregate figures, write the report.
type Service struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewService creates the report service. A nil logger falls back to slog.Default.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, logger: logger}
}

// Generate is the sole entry point. It always completes and always attempts to
// produce a report, even when every input is missing; the returned string is
// the user-facing result message.
func (s *Service) Generate(ctx context.Context) string {
	s.logger.InfoContext(ctx, "starting data analysis",
		slog.String("products", s.cfg.Files.Products),
		slog.String("items", s.cfg.Files.Items),
		slog.String("sales", s.cfg.Files.Sales),
		slog.String("period", fmt.Sprintf("%02d/%d", s.cfg.Report.Month, s.cfg.Report.Year)))

	sep := s.cfg.Files.SeparatorRune()

	inv, warnings, err := dataprocessing.NewLoader(s.logger, sep).LoadProducts(ctx, s.cfg.Files.Products)
	if err != nil {
		// Not fatal: downstream aggregations degrade to their defaults.
		s.logger.ErrorContext(ctx, "failed to load products file",
			slog.String("path", s.cfg.Files.Products),
			slog.String("error", err.Error()))
	}

	summarizer := dataprocessing.NewSummarizer(s.logger, sep)

	summary := dataprocessing.Summary{
		Month: s.cfg.Report.Month,
		Year:  s.cfg.Report.Year,
	}
	summary.MostExpensiveName, summary.MostExpensivePrice = summarizer.MostExpensiveProduct(inv)
	summary.InventoryValue = summarizer.InventoryValue(inv)
	summary.TopRevenueName, summary.TopRevenue = summarizer.TopRevenueProduct(ctx, inv, s.cfg.Files.Items)
	summary.PeriodSales = summarizer.SalesInPeriod(ctx, s.cfg.Files.Sales, s.cfg.Report.Month, s.cfg.Report.Year)

	lines := exporter.BuildReport(summary)
	if err := exporter.WriteReport(s.cfg.Files.Output, lines); err != nil {
		s.logger.ErrorContext(ctx, "failed to write report",
			slog.String("path", s.cfg.Files.Output),
			slog.String("error", err.Error()))
		return fmt.Sprintf(failureFormat, err)
	}

	s.writeBreakdown(ctx, summarizer, inv)

	s.logger.InfoContext(ctx, "report generated",
		slog.String("path", s.cfg.Files.Output),
		slog.Int("product_warnings", len(warnings)))

	return fmt.Sprintf(successFormat, s.cfg.Files.Output)
}

// writeBreakdown exports the optional per-product revenue CSV. Failures are
// logged and never change the orchestration result.
func (s *Service) writeBreakdown(ctx context.Context, summarizer *dataprocessing.Summarizer, inv *dataprocessing.Inventory) {
	if s.cfg.Files.Breakdown == "" {
		return
	}

	entries, err := summarizer.RevenueByProduct(ctx, inv, s.cfg.Files.Items)
	if err != nil {
		s.logger.ErrorContext(ctx, "skipping revenue breakdown",
			slog.String("path", s.cfg.Files.Breakdown),
			slog.String("error", err.Error()))
		return
	}

	writer := exporter.NewCSVWriter(s.logger)
	if err := writer.WriteRevenueBreakdown(s.cfg.Files.Breakdown, s.cfg.Files.SeparatorRune(), entries); err != nil {
		s.logger.ErrorContext(ctx, "failed to write revenue breakdown",
			slog.String("path", s.cfg.Files.Breakdown),
			slog.String("error", err.Error()))
	}
}
