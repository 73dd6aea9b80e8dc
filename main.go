package main

import (
	"fmt"
	"os"

	"covid-analyzer/charts"
	"covid-analyzer/config"
	"covid-analyzer/loader"
	"covid-analyzer/models"
	"covid-analyzer/services"
	"covid-analyzer/storage"
	"covid-analyzer/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== COVID-19 Dataset Analyzer starting ===")
	logger.Info("Config — dataset: %s | output: %s | timeout: %s",
		cfg.DatasetURL, cfg.OutputDir, cfg.FetchTimeout)

	datasetLoader := loader.New(cfg.DatasetURL, cfg.FetchTimeout, logger)
	raw, err := datasetLoader.Load()
	if err != nil {
		logger.Error("Dataset load failed: %v", err)
		os.Exit(1)
	}

	cleaner := services.NewCleaner(logger)
	records, report, err := cleaner.Clean(raw)
	if err != nil {
		logger.Error("Cleaning failed: %v (input rows: %d)", err, report.Input)
		os.Exit(1)
	}

	if cfg.ExportCleanCSV {
		if err := exportCSV(cfg.CleanCSVPath, records); err != nil {
			logger.Error("CSV export failed: %v", err)
		} else {
			logger.Info("Clean records exported to %s", cfg.CleanCSVPath)
		}
	}

	if cfg.PostgresEnabled {
		if err := storeRecords(cfg.DSN(), records); err != nil {
			logger.Error("PostgreSQL store failed: %v", err)
		} else {
			logger.Info("Clean records stored in PostgreSQL (table: covid_records)")
		}
	}

	summarizer := services.NewSummarizer(logger)
	summary := summarizer.Generate(records)
	summarizer.Print(summary)

	renderer := charts.NewRenderer(cfg.OutputDir, logger)
	if err := renderer.RenderAll(records); err != nil {
		logger.Error("Chart rendering failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("  Done. %d clean rows analyzed | charts → %s\n\n",
		report.Kept, cfg.OutputDir)
}

// exportCSV writes the cleaned table to a CSV file via the storage layer.
func exportCSV(path string, records []*models.Record) error {
	w, err := storage.NewCSVWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.Write(records)
}

// storeRecords persists the cleaned table to PostgreSQL.
func storeRecords(dsn string, records []*models.Record) error {
	pw, err := storage.NewPostgresWriter(dsn)
	if err != nil {
		return err
	}
	defer pw.Close()
	return pw.Write(records)
}
