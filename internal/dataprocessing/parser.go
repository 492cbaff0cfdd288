package dataprocessing

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "kdcli/internal/errors"
	"kdcli/pkg/contracts/domain"
)

// ParseFile reads a consolidated financing workbook and extracts the
// raw disclosure lines. Cell values are kept as strings; numeric and
// index interpretation belongs to the engine.
func ParseFile(filePath string) (*domain.FinancingBatch, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, apperrors.NewStorageError("open workbook", err).WithContext("path", filePath)
	}
	defer f.Close()

	batch, err := parseWorkbook(f)
	if err != nil {
		return nil, apperrors.NewParsingError("parse workbook", err).WithContext("path", filePath)
	}
	batch.SourceFile = filePath
	return batch, nil
}

// ParseReader reads a workbook from an io.Reader. Used by tests and by
// callers that already hold the bytes.
func ParseReader(r io.Reader) (*domain.FinancingBatch, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return parseWorkbook(f)
}

func parseWorkbook(f *excelize.File) (*domain.FinancingBatch, error) {
	rows, sheetName, err := findFinancingSheet(f)
	if err != nil {
		return nil, err
	}

	slog.Debug("found financing data sheet",
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(rows)))

	headerRow, columnMap := mapColumns(rows)
	if headerRow == -1 {
		return nil, fmt.Errorf("could not find header row in sheet %s", sheetName)
	}
	// Company and index text are the only columns the engine cannot
	// degrade gracefully without.
	for _, col := range []string{"company", "index"} {
		if _, exists := columnMap[col]; !exists {
			return nil, fmt.Errorf("could not find required column: %s", col)
		}
	}

	getString := func(row []string, colName string) string {
		if idx, exists := columnMap[colName]; exists && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	batch := &domain.FinancingBatch{}
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]

		if isEmptyRow(row, columnMap) {
			continue
		}
		// Skip subtotal and total rows that some workbooks append.
		first := strings.ToUpper(strings.TrimSpace(row[0]))
		if strings.Contains(first, "TOTAL") {
			continue
		}
		company := getString(row, "company")
		if company == "" {
			continue
		}

		batch.Lines = append(batch.Lines, domain.FinancingLine{
			Company:       company,
			IndexText:     getString(row, "index"),
			FinancingType: getString(row, "type"),
			DeclaredValue: getString(row, "value"),
			MaturityDate:  getString(row, "maturity"),
		})
	}

	if len(batch.Lines) == 0 {
		return nil, fmt.Errorf("sheet %s contains no financing lines", sheetName)
	}

	slog.Debug("workbook parsed", slog.Int("lines", len(batch.Lines)))
	return batch, nil
}

// findFinancingSheet locates the sheet carrying the financing table.
// Common names are tried first, then every sheet is probed for the
// company and index headers.
func findFinancingSheet(f *excelize.File) ([][]string, string, error) {
	possibleNames := []string{"Consolidado", "consolidado", "Financiamentos", "Dados", "Sheet1"}

	for _, name := range possibleNames {
		if rows, err := f.GetRows(name); err == nil && len(rows) > 1 {
			if headerRow, _ := mapColumns(rows); headerRow != -1 {
				return rows, name, nil
			}
		}
	}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) < 2 {
			continue
		}
		if headerRow, _ := mapColumns(rows); headerRow != -1 {
			return rows, name, nil
		}
	}

	return nil, "", fmt.Errorf("could not find financing data sheet in workbook")
}

// mapColumns scans for the header row and maps column positions by
// header name. Headers appear with and without accents depending on how
// the workbook was produced, so matching is on lowered, accent-loose
// substrings.
func mapColumns(rows [][]string) (int, map[string]int) {
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		rowText := strings.ToLower(strings.Join(row, " "))
		if !strings.Contains(rowText, "empresa") || !strings.Contains(rowText, "indexador") {
			continue
		}

		columnMap := make(map[string]int)
		for j, header := range row {
			headerLower := strings.ToLower(strings.TrimSpace(header))
			switch {
			case strings.Contains(headerLower, "empresa"):
				columnMap["company"] = j
			case strings.Contains(headerLower, "indexador"):
				columnMap["index"] = j
			case strings.Contains(headerLower, "tipo") || strings.Contains(headerLower, "modalidade"):
				columnMap["type"] = j
			case strings.Contains(headerLower, "consolidado") || strings.Contains(headerLower, "valor") || strings.Contains(headerLower, "saldo"):
				columnMap["value"] = j
			case strings.Contains(headerLower, "vencimento") || strings.Contains(headerLower, "maturidade"):
				columnMap["maturity"] = j
			}
		}
		return i, columnMap
	}
	return -1, nil
}

func isEmptyRow(row []string, columnMap map[string]int) bool {
	for _, colIndex := range columnMap {
		if colIndex < len(row) && strings.TrimSpace(row[colIndex]) != "" {
			return false
		}
	}
	return true
}
