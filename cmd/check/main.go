// Package main provides the check command: a data-quality-only run that
// prints exception and removed-reason tallies without writing workbooks.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"cirp/internal/config"
	"cirp/internal/ingest"
	"cirp/internal/logger"
	"cirp/internal/pipeline"
	"cirp/internal/report"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("CIRP_CONFIG"), "Path to YAML configuration file")
	inputPath := flag.String("input", "", "Input table path (overrides input.path)")

	flag.Parse()

	if *configPath == "" {
		fmt.Println("Usage: check -config <config.yaml> [-input <table>]")
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

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	raw, prov, err := ingest.ReadFile(cfg.Input.Path, cfg.Input.Sheet)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Ingestion failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Read %d rows from %s", prov.Rows, prov.Path))

	result := pipeline.Run(raw, cfg.Window(), cfg.CategorySet())

	removed := result.RemovedCounts()

	fmt.Printf("Complaints: %d (from %d normalized events, %d rows removed or tallied)\n\n",
		len(result.Records), len(result.Normalized.Events), removed.Total())
	fmt.Println(report.RenderTally(result.Exceptions.Counts(), removed))
}
