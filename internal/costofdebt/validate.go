package costofdebt

// Validation thresholds in decimal. Kd values above or below these are
// flagged for triage even when inside the hard validity range.
const (
	extremeHighKd = 0.30
	extremeLowKd  = 0.05

	// Fixed-rate instruments below this look like foreign-currency
	// rates mislabeled as BRL.
	foreignCurrencyKd = 0.03

	// Spreads above this are more likely parsing artifacts than real
	// margins.
	implausibleSpread = 0.20
)

// ValidateKd classifies a computed Kd as normal, extremely high,
// extremely low or out of range, with a diagnosis explaining the most
// likely cause. It is a pure function: same inputs, same result, no
// side effects. The first matching rule wins.
func ValidateKd(computed ComputedKd, classified ClassifiedIndexer, cfg *IndexerConfig) ValidationResult {
	result := ValidationResult{ComputedKd: computed}

	if !computed.HasKd {
		return result
	}

	switch {
	case computed.Kd > extremeHighKd:
		result.ExtremeHigh = true
		result.NeedsManualReview = true
		switch {
		case classified.Period == PeriodMonthly && !classified.IsFixedRate:
			result.SuspectedError = true
			result.Diagnosis = "possible error converting monthly rate to annual; verify the spread was not converted twice"
		// For fixed-rate instruments SpreadUsed holds the whole rate,
		// not a margin over a base, so the plausibility bound does not
		// apply to them.
		case !classified.IsFixedRate && computed.SpreadUsed > implausibleSpread:
			result.Diagnosis = "spread implausibly high; check spread parsing"
		default:
			result.Diagnosis = "Kd is high but potentially legitimate, needs review"
		}

	case computed.Kd < extremeLowKd:
		result.ExtremeLow = true
		switch {
		case classified.Index == IndexTR:
			// TR's base rate is intrinsically near zero; a low Kd is the
			// expected outcome, not a suspicious one.
			result.Diagnosis = "TR has a near-zero base rate, a low Kd is expected"
			result.NeedsManualReview = false
		case classified.Index == IndexIPCA && computed.SpreadUsed < 0:
			result.Diagnosis = "negative spread applied, verify correctness"
			result.NeedsManualReview = true
		case classified.IsFixedRate && computed.Kd < foreignCurrencyKd:
			result.Diagnosis = "may be a foreign-currency instrument (USD/EUR) mislabeled as a BRL fixed rate"
			result.NeedsManualReview = true
		default:
			result.Diagnosis = "Kd is very low, verify the index reference base value"
			result.NeedsManualReview = true
		}

	case computed.Kd < cfg.MinKd || computed.Kd > cfg.MaxKd:
		result.NeedsManualReview = true
		result.Diagnosis = "Kd outside the expected range"
	}

	return result
}
