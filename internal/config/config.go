package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix is the prefix for all environment overrides, e.g. SOOS_REPORT_MONTH.
const envPrefix = "SOOS"

// Config represents the complete application configuration
type Config struct {
	Files   FilesConfig   `yaml:"files" envconfig:"FILES"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// FilesConfig contains the input/output file configuration
type FilesConfig struct {
	// Separator is the field separator of all delimited sources. Exactly one rune.
	Separator string `yaml:"separator" envconfig:"SEPARATOR" validate:"required"`
	Products  string `yaml:"products" envconfig:"PRODUCTS" validate:"required"`
	Items     string `yaml:"items" envconfig:"ITEMS" validate:"required"`
	Sales     string `yaml:"sales" envconfig:"SALES" validate:"required"`
	Output    string `yaml:"output" envconfig:"OUTPUT" validate:"required"`
	// Breakdown is the optional per-product revenue CSV. Empty disables it.
	Breakdown string `yaml:"breakdown" envconfig:"BREAKDOWN"`
}

// ReportConfig contains the reporting period configuration
type ReportConfig struct {
	Month int `yaml:"month" envconfig:"MONTH" validate:"min=1,max=12"`
	Year  int `yaml:"year" envconfig:"YEAR" validate:"min=1"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format      string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output      string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// Default returns the built-in configuration: semicolon-separated CSV sources in
// the working directory, report period 10/2010, console logging.
func Default() *Config {
	return &Config{
		Files: FilesConfig{
			Separator: ";",
			Products:  "productos.csv",
			Items:     "items.csv",
			Sales:     "ventas.csv",
			Output:    "informe.txt",
		},
		Report: ReportConfig{
			Month: 10,
			Year:  2010,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/report.log",
		},
	}
}

// Load builds the configuration with precedence defaults < YAML file < environment.
// configFile may be empty, in which case SOOS_CONFIG_FILE or ./config.yaml is
// consulted; a missing file is not an error.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = os.Getenv(envPrefix + "_CONFIG_FILE")
	}
	if configFile == "" {
		configFile = "config.yaml"
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays configuration from a YAML file
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against its struct tags plus the
// single-rune separator constraint that tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if utf8.RuneCountInString(c.Files.Separator) != 1 {
		return fmt.Errorf("files.separator must be exactly one character, got %q", c.Files.Separator)
	}
	return nil
}

// SeparatorRune returns the configured field separator as a rune.
// Validate guarantees the separator is a single rune.
func (f FilesConfig) SeparatorRune() rune {
	r, _ := utf8.DecodeRuneInString(f.Separator)
	return r
}
