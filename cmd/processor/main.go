package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"kdcli/internal/config"
	"kdcli/internal/costofdebt"
	"kdcli/internal/dataprocessing"
	"kdcli/internal/exporter"
	"kdcli/internal/files"
	"kdcli/internal/infrastructure"
)

func main() {
	inPath := flag.String("in", "", "input workbook (.xlsx); when empty, the newest workbook in the data directory is used")
	outDir := flag.String("out", "", "output directory for CSV reports (defaults to the configured reports directory)")
	flag.Parse()

	if err := run(*inPath, *outDir); err != nil {
		slog.Error("processor failed", "error", err)
		os.Exit(1)
	}
}

func run(inPath, outDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	paths := config.NewPaths(cfg.Paths)
	if outDir != "" {
		paths.ReportsDir = outDir
	}
	if err := paths.EnsureDirectories(); err != nil {
		return err
	}

	if inPath == "" {
		workbooks, err := files.NewDiscovery("").FindExcelFiles(paths.DataDir)
		if err != nil {
			return fmt.Errorf("discover workbooks: %w", err)
		}
		latest, ok := files.GetLatestFile(workbooks)
		if !ok {
			return fmt.Errorf("no workbook found in %s", paths.DataDir)
		}
		inPath = latest.Path
	}

	logger.Info("parsing workbook", slog.String("path", inPath))
	batch, err := dataprocessing.ParseFile(inPath)
	if err != nil {
		return fmt.Errorf("parse workbook: %w", err)
	}

	indexerCfg := costofdebt.DefaultIndexerConfig()
	if cfg.Engine.ReferenceRatesFile != "" {
		rates, err := config.LoadReferenceRates(cfg.Engine.ReferenceRatesFile)
		if err != nil {
			return err
		}
		indexerCfg = indexerCfg.WithBaseRates(rates.Rates)
		logger.Info("loaded reference rates",
			slog.String("path", cfg.Engine.ReferenceRatesFile),
			slog.Int("reference_year", rates.ReferenceYear),
			slog.Int("rates", len(rates.Rates)))
	}

	engine, err := costofdebt.NewEngine(indexerCfg, logger)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	if cfg.Engine.MaxConcurrency > 0 {
		engine.SetMaxConcurrency(cfg.Engine.MaxConcurrency)
	}

	ctx := context.Background()
	result, err := engine.Process(ctx, batch.Lines)
	if err != nil {
		return fmt.Errorf("process batch: %w", err)
	}
	ctx = infrastructure.WithRunID(ctx, result.RunID)

	writer := exporter.NewCSVWriter(paths)
	if err := writer.WriteSimpleCSV("kd_lines.csv", exporter.LineHeaders, exporter.LineRecords(result.Lines)); err != nil {
		return fmt.Errorf("write per-line report: %w", err)
	}
	if err := writer.WriteSimpleCSV("kd_companies.csv", exporter.CompanyHeaders, exporter.CompanyRecords(result.Companies)); err != nil {
		return fmt.Errorf("write per-company report: %w", err)
	}
	if err := writer.WriteSimpleCSV("kd_review.csv", exporter.LineHeaders, exporter.ReviewRecords(result.Lines)); err != nil {
		return fmt.Errorf("write review report: %w", err)
	}

	logger.InfoContext(ctx, "reports written",
		slog.String("reports_dir", paths.ReportsDir),
		slog.Int("total_lines", result.TotalLines),
		slog.Int("identified_lines", result.IdentifiedLines),
		slog.Int("computed_lines", result.ComputedLines),
		slog.Int("review_lines", result.ReviewLines),
		slog.Int("companies", len(result.Companies)))

	return nil
}
