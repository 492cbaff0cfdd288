package costofdebt

// IndexID is the canonical identifier of a financing rate index.
type IndexID string

const (
	IndexCDI       IndexID = "CDI"
	IndexDI        IndexID = "DI"
	IndexTLP       IndexID = "TLP"
	IndexIPCA      IndexID = "IPCA"
	IndexIGPM      IndexID = "IGPM"
	IndexIPC       IndexID = "IPC"
	IndexTR        IndexID = "TR"
	IndexSELIC     IndexID = "SELIC"
	IndexSOFR      IndexID = "SOFR"
	IndexLIBOR     IndexID = "LIBOR"
	IndexPreFixado IndexID = "PRE_FIXADO"
	IndexPosFixado IndexID = "POS_FIXADO"
)

// UnidentifiedSentinel is the value reported for lines whose index type
// could not be resolved. Unidentified is an expected outcome, not an error.
const UnidentifiedSentinel = "UNIDENTIFIED"

// Period represents the compounding period a rate was quoted in.
type Period string

const (
	// PeriodAnnual is the default when the text carries no period marker.
	PeriodAnnual Period = "a.a."
	// PeriodMonthly rates must be compounded to annual before use.
	PeriodMonthly Period = "a.m."
)

// String returns the string representation of the period.
func (p Period) String() string {
	return string(p)
}

// ClassifiedIndexer is the canonical rate structure derived from one
// free-text index description. It is never mutated after creation.
type ClassifiedIndexer struct {
	OriginalText string   `json:"original_text"`
	Index        IndexID  `json:"index"`      // empty when unidentified
	Identified   bool     `json:"identified"` // false = unidentified sentinel downstream
	Spread       float64  `json:"spread"`     // decimal fraction, as extracted (pre conversion)
	HasSpread    bool     `json:"has_spread"` // absent spread is distinct from zero spread
	Period       Period   `json:"period"`
	IsFixedRate  bool     `json:"is_fixed_rate"`
	Observations []string `json:"observations"`
}

// ComputedKd is the annualized cost of debt derived from a classified
// indexer and the reference configuration.
type ComputedKd struct {
	BaseRate     float64  `json:"base_rate"`   // 0 for fixed-rate instruments
	HasBase      bool     `json:"has_base"`    // false when no reference value is configured
	SpreadUsed   float64  `json:"spread_used"` // post period-conversion
	Kd           float64  `json:"kd"`          // decimal, e.g. 0.1515
	KdPercent    float64  `json:"kd_percent"`  // e.g. 15.15
	HasKd        bool     `json:"has_kd"`
	InRange      bool     `json:"in_range"`
	Observations []string `json:"observations"`
}

// ValidationResult extends ComputedKd with extreme-case flags and a
// human-readable diagnosis. It is a pure function of its inputs.
type ValidationResult struct {
	ComputedKd

	ExtremeHigh       bool   `json:"extreme_high"`   // Kd > 30%
	ExtremeLow        bool   `json:"extreme_low"`    // Kd < 5%
	SuspectedError    bool   `json:"suspected_error"`
	NeedsManualReview bool   `json:"needs_manual_review"`
	Diagnosis         string `json:"diagnosis"`
}

// LineResult holds the full per-line pipeline output: the raw record's
// identifying fields plus classification, computation and validation.
type LineResult struct {
	Company       string            `json:"company"`
	FinancingType string            `json:"financing_type"`
	DeclaredValue float64           `json:"declared_value"`
	HasValue      bool              `json:"has_value"` // parsed and strictly positive values weigh in aggregation
	MaturityDate  string            `json:"maturity_date,omitempty"`
	Classified    ClassifiedIndexer `json:"classified"`
	Validation    ValidationResult  `json:"validation"`
}

// IndexLabel returns the canonical index id for reporting, substituting
// the unidentified sentinel when classification failed. Fixed-rate lines
// report PRE_FIXADO.
func (lr LineResult) IndexLabel() string {
	if lr.Classified.IsFixedRate {
		return string(IndexPreFixado)
	}
	if !lr.Classified.Identified {
		return UnidentifiedSentinel
	}
	return string(lr.Classified.Index)
}

// Weighable reports whether the line participates in per-company weighted
// aggregation: it needs a computed Kd and a strictly positive declared
// value. Lines excluded here still count toward batch-level line totals;
// the inclusion/exclusion asymmetry is deliberate.
func (lr LineResult) Weighable() bool {
	return lr.Validation.HasKd && lr.HasValue && lr.DeclaredValue > 0
}

// CompanyAggregate is the value-weighted roll-up of all weighable
// financing lines of one company. Recomputed wholesale, never mutated.
type CompanyAggregate struct {
	Company string `json:"company"`

	WeightedKd float64 `json:"weighted_kd"` // percent, value-weighted
	MeanKd     float64 `json:"mean_kd"`     // percent, unweighted
	StdDevKd   float64 `json:"stddev_kd"`   // percent, sample stddev (0 for single line)
	MinKd      float64 `json:"min_kd"`
	MaxKd      float64 `json:"max_kd"`

	LineCount       int     `json:"line_count"` // weighable lines only
	DistinctIndexes int     `json:"distinct_indexes"`
	DistinctTypes   int     `json:"distinct_types"`
	TotalValue      float64 `json:"total_value"`
	MeanValue       float64 `json:"mean_value"`

	IndexesUsed []string `json:"indexes_used"`

	// Debt heterogeneity (Herfindahl-Hirschman over value shares).
	HHIByIndex      float64 `json:"hhi_by_index"` // in [0,1]
	HHIByType       float64 `json:"hhi_by_type"`  // in [0,1]
	Diversification float64 `json:"diversification"` // 1 - HHIByIndex
}

// BatchResult is the output of one engine run over a batch of raw lines.
type BatchResult struct {
	RunID string `json:"run_id"`

	Lines     []LineResult       `json:"lines"`     // one per input line, input order
	Companies []CompanyAggregate `json:"companies"` // sorted by weighted Kd descending

	// Batch-level accounting. TotalLines counts every input line;
	// WeighableLines counts the subset that entered aggregation.
	TotalLines      int `json:"total_lines"`
	IdentifiedLines int `json:"identified_lines"`
	ComputedLines   int `json:"computed_lines"`
	WeighableLines  int `json:"weighable_lines"`
	ReviewLines     int `json:"review_lines"`
}
