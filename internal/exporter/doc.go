// Package exporter provides CSV export functionality for the cost-of-debt
// reports.
//
// This package contains two main components:
//
// CSVWriter: Core CSV writing functionality with support for headers and
// UTF-8 BOM for Excel compatibility. Relative paths resolve into the
// configured reports directory.
//
// Report builders: LineRecords, CompanyRecords and ReviewRecords convert
// engine output into the per-line, per-company and manual-review tables.
// Values the engine could not compute are emitted as empty cells, never
// as zeros.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(paths)
//	err := writer.WriteSimpleCSV("kd_lines.csv",
//	    exporter.LineHeaders, exporter.LineRecords(result.Lines))
package exporter
