// kdreport regenerates the manual-review report from a previously
// exported per-line CSV, without re-running the engine.
package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"kdcli/internal/config"
	"kdcli/internal/exporter"
	"kdcli/internal/infrastructure"
)

func main() {
	inPath := flag.String("in", "", "per-line report CSV (defaults to kd_lines.csv in the configured reports directory)")
	outPath := flag.String("out", "kd_review.csv", "output review report CSV")
	flag.Parse()

	if err := run(*inPath, *outPath); err != nil {
		slog.Error("kdreport failed", "error", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string) error {
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
	if inPath == "" {
		inPath = paths.GetReportPath("kd_lines.csv")
	}

	headers, records, err := readLineReport(inPath)
	if err != nil {
		return err
	}

	flagged, err := filterFlagged(headers, records)
	if err != nil {
		return fmt.Errorf("filter %s: %w", inPath, err)
	}

	writer := exporter.NewCSVWriter(paths)
	if err := writer.WriteSimpleCSV(outPath, headers, flagged); err != nil {
		return fmt.Errorf("write review report: %w", err)
	}

	logger.Info("review report written",
		slog.String("input", inPath),
		slog.String("output", outPath),
		slog.Int("total_rows", len(records)),
		slog.Int("flagged_rows", len(flagged)))

	return nil
}

// readLineReport reads a per-line report CSV, tolerating the UTF-8 BOM
// the exporter writes for Excel.
func readLineReport(path string) ([]string, [][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read line report: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", path)
	}
	return rows[0], rows[1:], nil
}

// filterFlagged keeps rows with any extreme or review flag set.
func filterFlagged(headers []string, records [][]string) ([][]string, error) {
	flagColumns := map[string]bool{
		"extreme_high":    true,
		"extreme_low":     true,
		"suspected_error": true,
		"needs_review":    true,
	}
	var flagIndexes []int
	for i, header := range headers {
		if flagColumns[header] {
			flagIndexes = append(flagIndexes, i)
		}
	}
	if len(flagIndexes) == 0 {
		return nil, fmt.Errorf("no flag columns found (expected %v)", exporter.LineHeaders)
	}

	var flagged [][]string
	for _, record := range records {
		for _, idx := range flagIndexes {
			if idx < len(record) && record[idx] == "true" {
				flagged = append(flagged, record)
				break
			}
		}
	}
	return flagged, nil
}
