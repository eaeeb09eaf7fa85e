package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"sooscli/internal/app"
	"sooscli/internal/config"
	"sooscli/internal/infrastructure"
)

func main() {
	configFile := flag.String("config", "", "config file path (defaults to ./config.yaml)")
	products := flag.String("products", "", "products file path (csv or xlsx; defaults to productos.csv)")
	items := flag.String("items", "", "items file path (defaults to items.csv)")
	sales := flag.String("sales", "", "sales file path (defaults to ventas.csv)")
	out := flag.String("out", "", "report output path (defaults to informe.txt)")
	breakdown := flag.String("breakdown", "", "optional per-product revenue CSV output path")
	sep := flag.String("sep", "", "field separator (defaults to ';')")
	month := flag.Int("month", 0, "report month 1-12 (defaults to configured month)")
	year := flag.Int("year", 0, "report year (defaults to configured year)")
	flag.Parse()

	// A .env file may carry SOOS_* overrides; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	// Flags override env and file configuration.
	if *products != "" {
		cfg.Files.Products = *products
	}
	if *items != "" {
		cfg.Files.Items = *items
	}
	if *sales != "" {
		cfg.Files.Sales = *sales
	}
	if *out != "" {
		cfg.Files.Output = *out
	}
	if *breakdown != "" {
		cfg.Files.Breakdown = *breakdown
	}
	if *sep != "" {
		cfg.Files.Separator = *sep
	}
	if *month != 0 {
		cfg.Report.Month = *month
	}
	if *year != 0 {
		cfg.Report.Year = *year
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger.InfoContext(ctx, "Starting report generation",
		slog.String("output", cfg.Files.Output),
		slog.Int("month", cfg.Report.Month),
		slog.Int("year", cfg.Report.Year))

	// The result message is the program's stdout contract; diagnostics go to
	// the logger. Data errors never produce a nonzero exit status.
	fmt.Println(app.NewService(cfg, logger).Generate(ctx))
}
