package costofdebt

import "math"

// DetectPeriod determines whether a rate description quotes a monthly or
// annual rate. Monthly markers are checked first; when nothing matches
// the period defaults to annual, the dominant convention in filings.
func (c *IndexerConfig) DetectPeriod(text string) Period {
	normalized := NormalizeText(text)
	if normalized == "" {
		return PeriodAnnual
	}
	for _, pattern := range c.MonthlyPatterns {
		if pattern.MatchString(normalized) {
			return PeriodMonthly
		}
	}
	for _, pattern := range c.AnnualPatterns {
		if pattern.MatchString(normalized) {
			return PeriodAnnual
		}
	}
	return PeriodAnnual
}

// ToAnnual converts a monthly rate to its annual equivalent using
// compound capitalization: (1+r)^12 - 1. Linear scaling (r*12)
// systematically understates the annualized cost and must not be used.
func ToAnnual(monthly float64) float64 {
	return math.Pow(1+monthly, 12) - 1
}
