package domain

// FinancingLine is one raw financing disclosure record as extracted from
// the consolidated spreadsheet. Values are kept exactly as found; all
// interpretation (index classification, numeric parsing) happens in the
// engine. The record is immutable input and never mutated.
type FinancingLine struct {
	Company       string `json:"company" validate:"required"`
	IndexText     string `json:"index_text"`
	FinancingType string `json:"financing_type"`
	DeclaredValue string `json:"declared_value"` // locale-formatted, parsed by the engine
	MaturityDate  string `json:"maturity_date,omitempty"`
}

// FinancingBatch groups the lines of one source workbook together with
// provenance information for logging and reporting.
type FinancingBatch struct {
	SourceFile string          `json:"source_file"`
	Lines      []FinancingLine `json:"lines" validate:"required,min=1"`
}
