// Package config provides configuration management for the inspection
// pipeline.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cirp/internal/models"
	"cirp/pkg/dates"
)

// Configuration validation errors.
var (
	ErrMissingStartDate      = errors.New("dataset.start_date is required")
	ErrMissingExportDate     = errors.New("dataset.export_date is required")
	ErrMissingMetricsStart   = errors.New("dataset.metrics_start_date is required")
	ErrUnparseableDate       = errors.New("unparseable date")
	ErrExportBeforeStart     = errors.New("dataset.export_date precedes dataset.start_date")
	ErrCutoffOutsideDataset  = errors.New("dataset.metrics_start_date falls outside the dataset window")
	ErrNoCategories          = errors.New("categories.order must list at least one category")
	ErrNoTerminalCategories  = errors.New("categories.terminal must list at least one category")
	ErrUnknownTerminal       = errors.New("categories.terminal entry not present in categories.order")
	ErrMissingInputPath      = errors.New("input.path is required")
	ErrMissingSummaryPath    = errors.New("output.summary_path is required")
	ErrMissingExceptionsPath = errors.New("output.exceptions_path is required")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat      = errors.New("logging.format must be 'text' or 'json'")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Dataset    DatasetConfig    `yaml:"dataset"`
	Categories CategoriesConfig `yaml:"categories"`
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// DatasetConfig declares the dataset's temporal bounds as YYYY-MM-DD dates.
type DatasetConfig struct {
	StartDate        string `yaml:"start_date"`
	ExportDate       string `yaml:"export_date"`
	MetricsStartDate string `yaml:"metrics_start_date"`
}

// CategoriesConfig declares the recognized event-type prefixes and the
// subset that closes a complaint. Empty lists fall back to the defaults.
type CategoriesConfig struct {
	Order    []string `yaml:"order"`
	Terminal []string `yaml:"terminal"`
}

// InputConfig locates the input table. Sheet is only consulted for
// workbook inputs; empty means the first sheet.
type InputConfig struct {
	Path  string `yaml:"path"`
	Sheet string `yaml:"sheet"`
}

// OutputConfig locates the two report workbooks.
type OutputConfig struct {
	SummaryPath    string `yaml:"summary_path"`
	ExceptionsPath string `yaml:"exceptions_path"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and validates configuration from a YAML file.
func Load(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Categories.Order) == 0 && len(c.Categories.Terminal) == 0 {
		def := models.DefaultCategories()
		for _, cat := range def.Order {
			c.Categories.Order = append(c.Categories.Order, string(cat))
		}

		for _, cat := range def.Terminal {
			c.Categories.Terminal = append(c.Categories.Terminal, string(cat))
		}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	window, err := c.window()
	if err != nil {
		return err
	}

	if window.ExportDate.Before(window.StartDate) {
		return ErrExportBeforeStart
	}

	if !dates.InRange(window.MetricsStartDate, window.StartDate, window.ExportDate) {
		return ErrCutoffOutsideDataset
	}

	if len(c.Categories.Order) == 0 {
		return ErrNoCategories
	}

	if len(c.Categories.Terminal) == 0 {
		return ErrNoTerminalCategories
	}

	set := c.CategorySet()
	for _, t := range set.Terminal {
		if !set.Contains(t) {
			return fmt.Errorf("%w: %q", ErrUnknownTerminal, t)
		}
	}

	if c.Input.Path == "" {
		return ErrMissingInputPath
	}

	if c.Output.SummaryPath == "" {
		return ErrMissingSummaryPath
	}

	if c.Output.ExceptionsPath == "" {
		return ErrMissingExceptionsPath
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// Window returns the dataset's temporal bounds as calendar dates. Call only
// on a validated config.
func (c *Config) Window() models.DatasetWindow {
	window, err := c.window()
	if err != nil {
		panic("config: Window called on unvalidated config: " + err.Error())
	}

	return window
}

func (c *Config) window() (models.DatasetWindow, error) {
	var window models.DatasetWindow

	start, ok := dates.Parse(c.Dataset.StartDate)

	switch {
	case c.Dataset.StartDate == "":
		return window, ErrMissingStartDate
	case !ok:
		return window, fmt.Errorf("%w: dataset.start_date %q", ErrUnparseableDate, c.Dataset.StartDate)
	}

	export, ok := dates.Parse(c.Dataset.ExportDate)

	switch {
	case c.Dataset.ExportDate == "":
		return window, ErrMissingExportDate
	case !ok:
		return window, fmt.Errorf("%w: dataset.export_date %q", ErrUnparseableDate, c.Dataset.ExportDate)
	}

	cutoff, ok := dates.Parse(c.Dataset.MetricsStartDate)

	switch {
	case c.Dataset.MetricsStartDate == "":
		return window, ErrMissingMetricsStart
	case !ok:
		return window, fmt.Errorf("%w: dataset.metrics_start_date %q", ErrUnparseableDate, c.Dataset.MetricsStartDate)
	}

	window.StartDate = start
	window.ExportDate = export
	window.MetricsStartDate = cutoff

	return window, nil
}

// CategorySet converts the configured category lists to the domain form.
func (c *Config) CategorySet() models.CategorySet {
	set := models.CategorySet{}

	for _, cat := range c.Categories.Order {
		set.Order = append(set.Order, models.Category(cat))
	}

	for _, cat := range c.Categories.Terminal {
		set.Terminal = append(set.Terminal, models.Category(cat))
	}

	return set
}

// String returns a short description of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Window: %s..%s, Cutoff: %s}",
		c.Input.Path,
		c.Dataset.StartDate,
		c.Dataset.ExportDate,
		c.Dataset.MetricsStartDate,
	)
}
