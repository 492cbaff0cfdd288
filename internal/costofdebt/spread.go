package costofdebt

import (
	"regexp"
	"strconv"
	"strings"
)

// negativePrefix matches the sign tokens that mark a subtracted spread,
// including the Unicode dash and minus variants seen in filings.
const negativePrefix = `[-\x{2013}\x{2014}\x{2212}]\s*`

// ExtractSpread extracts a spread from a free-text rate description and
// returns it as a decimal fraction (1,5% -> 0.015). The second return is
// false when no percentage could be found; callers must not conflate
// that with a zero spread.
//
// Patterns are tried in configured order: explicitly signed values,
// period-qualified percentages, ranges ("5,60% a 9,88%" resolves to the
// lower bound by convention), then bare percentages. For fixed-rate
// instruments the percentage adjacent to the keyword is the total rate.
func (c *IndexerConfig) ExtractSpread(text string) (float64, bool) {
	normalized := NormalizeText(text)
	if normalized == "" {
		return 0, false
	}

	for _, pattern := range c.SpreadPatterns {
		m := pattern.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		value, err := parsePercent(m[1])
		if err != nil {
			continue
		}
		// The matched number may carry a leading minus elsewhere in the
		// text; recheck the sign against the literal captured token.
		negRe, err := regexp.Compile(negativePrefix + regexp.QuoteMeta(m[1]))
		if err == nil && negRe.MatchString(normalized) {
			value = -value
		}
		return value, true
	}

	// Fixed-rate keyword followed by a percentage: the value is the
	// instrument's full rate ("Pré-fixado 6,94% a.a.", "Fixo a 9,9%").
	for _, pattern := range c.FixedRatePatterns {
		if m := pattern.FindStringSubmatch(normalized); m != nil {
			if value, err := parsePercent(m[1]); err == nil {
				return value, true
			}
		}
	}

	// Last resort: a leading bare percentage ("18,44% a.a." with no
	// named index).
	if m := c.PercentDirect.FindStringSubmatch(normalized); m != nil {
		if value, err := parsePercent(m[1]); err == nil {
			return value, true
		}
	}

	return 0, false
}

// parsePercent converts a captured percentage token to a decimal
// fraction, accepting either comma or dot as the decimal separator.
func parsePercent(token string) (float64, error) {
	token = strings.ReplaceAll(token, ",", ".")
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}
