// Package dataprocessing reads consolidated financing workbooks and
// extracts the raw disclosure lines for the cost-of-debt engine.
//
// The parser locates the data sheet by probing for the company and index
// headers, maps column positions dynamically (header names vary across
// workbook vintages) and keeps every cell as a string: numeric and index
// interpretation is the engine's job, not the parser's.
//
// Basic usage:
//
//	batch, err := dataprocessing.ParseFile("consolidado_2024.xlsx")
//	if err != nil {
//	    log.Fatal(err)
//	}
package dataprocessing
