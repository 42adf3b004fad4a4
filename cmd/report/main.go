// Package main provides the report command: run the full pipeline over one
// dataset snapshot and write the summary and exceptions workbooks.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"cirp/internal/config"
	"cirp/internal/ingest"
	"cirp/internal/logger"
	"cirp/internal/pipeline"
	"cirp/internal/report"
)

func main() {
	// .env is optional; flags and CIRP_CONFIG take their values from it
	// when present.
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("CIRP_CONFIG"), "Path to YAML configuration file")
	inputPath := flag.String("input", "", "Input table path (overrides input.path)")
	summaryPath := flag.String("summary", "", "Summary workbook path (overrides output.summary_path)")
	exceptionsPath := flag.String("exceptions", "", "Exceptions workbook path (overrides output.exceptions_path)")

	flag.Parse()

	if *configPath == "" {
		fmt.Println("Usage: report -config <config.yaml> [-input <table>] [-summary <out.xlsx>] [-exceptions <out.xlsx>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}

	if *summaryPath != "" {
		cfg.Output.SummaryPath = *summaryPath
	}

	if *exceptionsPath != "" {
		cfg.Output.ExceptionsPath = *exceptionsPath
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	log.Info("🚀 Starting inspection resolution pipeline")
	log.Info(fmt.Sprintf("📍 Input: %s", cfg.Input.Path))

	startTime := time.Now()

	// Phase 1: Ingestion
	// ------------------
	log.Info("Phase 1: Ingestion...")

	raw, prov, err := ingest.ReadFile(cfg.Input.Path, cfg.Input.Sheet)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Ingestion failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Read %d rows (sha256 %.12s…) in %v", prov.Rows, prov.SHA256, time.Since(startTime)))

	// Phase 2: Transformation
	// -----------------------
	log.Info("Phase 2: Transformation (normalize, aggregate, validate, metrics)...")

	runStart := time.Now()

	result := pipeline.Run(raw, cfg.Window(), cfg.CategorySet())

	log.Info(fmt.Sprintf("✅ %d events normalized into %d complaints in %v",
		len(result.Normalized.Events), len(result.Records), time.Since(runStart)))

	// Phase 3: Reporting
	// ------------------
	log.Info("Phase 3: Reporting...")

	if err := report.WriteSummaryWorkbook(cfg.Output.SummaryPath, result.Metrics); err != nil {
		log.Error(fmt.Sprintf("❌ Writing summary workbook failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("💾 Summary workbook: %s", cfg.Output.SummaryPath))

	if err := report.WriteExceptionsWorkbook(cfg.Output.ExceptionsPath, result.Exceptions, result.RemovedCounts(), prov); err != nil {
		log.Error(fmt.Sprintf("❌ Writing exceptions workbook failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("💾 Exceptions workbook: %s", cfg.Output.ExceptionsPath))

	// Final report
	// ------------
	log.Info("✨ Pipeline complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 %s\n", prov.Path)
	fmt.Println("------------------------------------------------")
	fmt.Println(report.RenderSummaries(result.Metrics))
	fmt.Println(report.RenderTally(result.Exceptions.Counts(), result.RemovedCounts()))
	fmt.Printf("Total duration: %v\n", time.Since(startTime))
}
