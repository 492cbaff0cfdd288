package costofdebt

import (
	"fmt"
	"regexp"
)

// ClassificationRule pairs a canonical index id with the compiled pattern
// that identifies it. Rules are evaluated in slice order, so the rule
// table makes the priority ordering visible and testable instead of
// hiding it in an if/else chain.
type ClassificationRule struct {
	Index   IndexID
	Pattern *regexp.Regexp
}

// IndexerConfig holds the static reference data the engine needs:
// per-index base annual rates, the ordered classification rules, spread
// and period patterns, missing-value sentinels and the valid Kd range.
// Construct it once and treat it as immutable; every engine function
// receives it explicitly.
type IndexerConfig struct {
	// BaseRates maps canonical index ids to annual reference rates in
	// decimal. A nil entry means the index is known but has no reference
	// value (fixed-rate and floating-unresolved instruments).
	BaseRates map[IndexID]*float64

	// Rules are evaluated in order; most specific first.
	Rules []ClassificationRule

	// PercentDirect matches a bare leading percentage with an optional
	// period marker. Text matching it with no named index is treated as
	// fixed-rate by convention.
	PercentDirect *regexp.Regexp

	// SpreadPatterns are tried in order; each has one capture group with
	// the numeric part of the percentage.
	SpreadPatterns []*regexp.Regexp

	// FixedRatePatterns extract a percentage adjacent to a fixed-rate
	// keyword; the captured value is the instrument's total rate.
	FixedRatePatterns []*regexp.Regexp

	// MonthlyPatterns are checked before AnnualPatterns; neither matching
	// defaults the period to annual.
	MonthlyPatterns []*regexp.Regexp
	AnnualPatterns  []*regexp.Regexp

	// MissingSentinels mark descriptions that carry no information at
	// all ("não informado", "-", ...), compared against normalized text.
	MissingSentinels []string

	// Valid Kd range in decimal, inclusive.
	MinKd float64
	MaxKd float64
}

func rate(v float64) *float64 { return &v }

// DefaultIndexerConfig returns the reference configuration for the 2024
// Brazilian market. Base rates are annual decimals (2024 averages).
func DefaultIndexerConfig() *IndexerConfig {
	return &IndexerConfig{
		BaseRates: map[IndexID]*float64{
			IndexCDI:       rate(0.1365), // ~13.65% a.a. (2024 average)
			IndexDI:        rate(0.1365), // tracks CDI
			IndexTLP:       rate(0.0650), // BNDES long-term rate, also covers legacy TJLP
			IndexIPCA:      rate(0.0462), // projected 2024 inflation
			IndexIGPM:      rate(0.0462), // IPCA used as proxy
			IndexIPC:       rate(0.0462), // IPCA used as proxy
			IndexTR:        rate(0.0001), // near zero, largely disused
			IndexSELIC:     rate(0.1050),
			IndexSOFR:      rate(0.0500), // 2024 average
			IndexLIBOR:     rate(0.0550), // 2024 average
			IndexPreFixado: nil,          // the extracted rate already is the Kd
			IndexPosFixado: nil,          // floating with no resolvable base
		},

		// Patterns match normalized text: uppercase, accents stripped,
		// whitespace collapsed. Ordering resolves ambiguous substrings:
		// TLP before IPCA ("TLP_IPCA" must resolve to TLP), DI before CDI
		// ("100% do DI" must not fall through to CDI), IGPM/IPC before
		// IPCA, fixed/floating keywords last.
		Rules: []ClassificationRule{
			{IndexSOFR, regexp.MustCompile(`\bSOFR\b`)},
			{IndexLIBOR, regexp.MustCompile(`\bLIBOR\b`)},
			{IndexTLP, regexp.MustCompile(`\bTJLP\b`)},
			{IndexTLP, regexp.MustCompile(`\bTLP(?:_IPCA)?\b`)},
			{IndexIGPM, regexp.MustCompile(`\bIGP[-\s]?M\b`)},
			{IndexIPC, regexp.MustCompile(`\bIPC\b`)},
			{IndexIPCA, regexp.MustCompile(`\bIPCA(?:-E)?\b`)},
			{IndexDI, regexp.MustCompile(`\b(?:100%?\s+)?(?:DO\s+)?DI\b`)},
			{IndexCDI, regexp.MustCompile(`\bCDI\b`)},
			{IndexSELIC, regexp.MustCompile(`\bSELIC\b`)},
			{IndexTR, regexp.MustCompile(`\bTR\b`)},
			{IndexPosFixado, regexp.MustCompile(`\bPOS[\s-]?FIXADO\b|\bPOSFIXADO\b`)},
			{IndexPreFixado, regexp.MustCompile(`\bPRE[\s-]?FIXADO\b|\bPREFIXADO\b|\bFIXO\b|\bFIXA\b|\bPRE\b`)},
		},

		PercentDirect: regexp.MustCompile(`^\s*(\d+[.,]\d+)\s*%\s*(?:A\.?A\.?|A\.?M\.?|AO\s+ANO|AO\s+MES)?`),

		// Tried in order: explicit sign, annual marker, monthly marker,
		// range (the capture takes the first/lower bound by convention),
		// bare decimal, bare integer.
		SpreadPatterns: []*regexp.Regexp{
			regexp.MustCompile(`[-\x{2013}\x{2014}\x{2212}]\s*(\d+[.,]\d+)\s*%`),
			regexp.MustCompile(`\+\s*(\d+[.,]\d+)\s*%`),
			regexp.MustCompile(`(\d+[.,]\d+)\s*%\s*(?:A\.?A\.?\b|AO\s+ANO)`),
			regexp.MustCompile(`(\d+[.,]\d+)\s*%\s*(?:A\.?M\.?\b|AO\s+MES)`),
			regexp.MustCompile(`(\d+[.,]\d+)\s*%\s*A\s*\d+[.,]\d+\s*%`),
			regexp.MustCompile(`(\d+[.,]\d+)\s*%`),
			regexp.MustCompile(`(\d+)\s*%`),
		},

		FixedRatePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:PRE[\s-]?FIXADO|PREFIXADO|PRE)\s*(?:DE\s+)?(\d+[.,]\d+)\s*%`),
			regexp.MustCompile(`FIX[OA]\s*(?:A\s+|DE\s+)?(\d+[.,]\d+)\s*%`),
		},

		MonthlyPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\bA\.?M\.?(?:\b|$)`),
			regexp.MustCompile(`\bAO\s+MES\b`),
			regexp.MustCompile(`\bMENSAL\b`),
		},
		AnnualPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\bA\.?A\.?(?:\b|$)`),
			regexp.MustCompile(`\bAO\s+ANO\b`),
			regexp.MustCompile(`\bANUAL\b`),
		},

		MissingSentinels: []string{
			"NAO ESPECIFICADO", "NAO INFORMADO", "NAO DEFINIDO",
			"NAO HA", "SEM INFORMACAO", "-", "NAN", "NONE",
		},

		MinKd: 0.0,
		MaxKd: 0.50,
	}
}

// WithBaseRates returns a copy of the configuration with the given
// reference rates replacing the defaults. Unknown ids are added as new
// indexes without classification rules; existing ids are overridden.
// The receiver is not modified.
func (c *IndexerConfig) WithBaseRates(overrides map[string]float64) *IndexerConfig {
	if len(overrides) == 0 {
		return c
	}
	out := *c
	out.BaseRates = make(map[IndexID]*float64, len(c.BaseRates))
	for id, r := range c.BaseRates {
		out.BaseRates[id] = r
	}
	for id, v := range overrides {
		out.BaseRates[IndexID(id)] = rate(v)
	}
	return &out
}

// Validate checks internal consistency of the configuration.
func (c *IndexerConfig) Validate() error {
	if len(c.Rules) == 0 {
		return fmt.Errorf("no classification rules configured")
	}
	if len(c.SpreadPatterns) == 0 {
		return fmt.Errorf("no spread patterns configured")
	}
	if c.MinKd >= c.MaxKd {
		return fmt.Errorf("invalid Kd range: min=%.4f, max=%.4f", c.MinKd, c.MaxKd)
	}
	for _, rule := range c.Rules {
		if rule.Index == "" || rule.Pattern == nil {
			return fmt.Errorf("incomplete classification rule for %q", rule.Index)
		}
	}
	return nil
}

// BaseRate returns the configured annual base rate for an index id. The
// second return distinguishes "no reference value configured" from a
// genuine zero rate.
func (c *IndexerConfig) BaseRate(id IndexID) (float64, bool) {
	r, ok := c.BaseRates[id]
	if !ok || r == nil {
		return 0, false
	}
	return *r, true
}
