package costofdebt

// Standardize derives the canonical rate structure from one free-text
// index description: canonical id, extracted spread, quoted period and
// the fixed-rate flag, with observations recording every assumption
// made. The result is deterministic and never mutated afterwards.
func (c *IndexerConfig) Standardize(text string) ClassifiedIndexer {
	result := ClassifiedIndexer{
		OriginalText: text,
		Period:       PeriodAnnual,
	}

	if NormalizeText(text) == "" {
		result.Observations = append(result.Observations, "index description empty")
		return result
	}

	index, ok := c.Classify(text)
	if !ok {
		result.Observations = append(result.Observations, "index type not identified")
		return result
	}
	result.Index = index
	result.Identified = true

	if index == IndexPreFixado {
		// For fixed-rate instruments the extracted percentage is the
		// instrument's total rate, not a spread over a base.
		result.IsFixedRate = true
		if spread, found := c.ExtractSpread(text); found {
			result.Spread = spread
			result.HasSpread = true
			result.Observations = append(result.Observations, "fixed rate: extracted percentage is the total rate")
		} else {
			result.Observations = append(result.Observations, "fixed rate without an identifiable rate")
		}
		return result
	}

	if spread, found := c.ExtractSpread(text); found {
		result.Spread = spread
		result.HasSpread = true
	} else {
		result.Observations = append(result.Observations, "spread not found, assumed 0")
	}

	result.Period = c.DetectPeriod(text)

	return result
}
