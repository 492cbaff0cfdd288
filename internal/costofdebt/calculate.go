package costofdebt

import "fmt"

// ComputeKd combines the classified indexer with the reference
// configuration into a final annualized Kd.
//
// Three unresolved outcomes stay distinguishable for downstream triage:
// an unidentified index, an identified index with no configured base
// rate, and a computed Kd outside the valid range. Only the last one
// produces a Kd value; none of them is an error.
func ComputeKd(classified ClassifiedIndexer, cfg *IndexerConfig) ComputedKd {
	result := ComputedKd{}

	if classified.IsFixedRate {
		if !classified.HasSpread {
			result.Observations = append(result.Observations, "fixed rate without an identifiable rate")
			return result
		}
		// The extracted rate already is the final Kd; no base applies.
		result.BaseRate = 0
		result.HasBase = true
		result.SpreadUsed = classified.Spread
		result.Kd = classified.Spread
		result.KdPercent = classified.Spread * 100
		result.HasKd = true
		result.InRange = result.Kd >= cfg.MinKd && result.Kd <= cfg.MaxKd
		result.Observations = append(result.Observations, "fixed rate: rate is the final Kd")
		if !result.InRange {
			result.Observations = append(result.Observations, rangeObservation(cfg))
		}
		return result
	}

	if !classified.Identified {
		result.Observations = append(result.Observations, "index not identified, Kd cannot be computed")
		return result
	}

	base, ok := cfg.BaseRate(classified.Index)
	if !ok {
		result.Observations = append(result.Observations,
			fmt.Sprintf("no reference base rate configured for %s", classified.Index))
		return result
	}
	result.BaseRate = base
	result.HasBase = true

	spread := classified.Spread
	if !classified.HasSpread {
		spread = 0
		result.Observations = append(result.Observations,
			fmt.Sprintf("spread not found, assumed 0 (Kd = %s base rate)", classified.Index))
	} else if classified.Period == PeriodMonthly {
		annual := ToAnnual(spread)
		result.Observations = append(result.Observations,
			fmt.Sprintf("spread converted from monthly (%.2f%%) to annual (%.2f%%)", spread*100, annual*100))
		spread = annual
	}
	result.SpreadUsed = spread

	result.Kd = base + spread
	result.KdPercent = result.Kd * 100
	result.HasKd = true
	result.InRange = result.Kd >= cfg.MinKd && result.Kd <= cfg.MaxKd
	if !result.InRange {
		result.Observations = append(result.Observations, rangeObservation(cfg))
	}

	return result
}

func rangeObservation(cfg *IndexerConfig) string {
	return fmt.Sprintf("Kd outside the expected range (%.1f%% - %.1f%%)", cfg.MinKd*100, cfg.MaxKd*100)
}
