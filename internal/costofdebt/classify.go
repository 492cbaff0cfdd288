package costofdebt

import "strings"

// Classify resolves a free-text index description to a canonical index
// id. The second return is false when the text is empty, matches a
// missing-value sentinel, or no configured rule applies; unidentified is
// an expected, first-class outcome and never an error.
func (c *IndexerConfig) Classify(text string) (IndexID, bool) {
	normalized := NormalizeText(text)
	if normalized == "" {
		return "", false
	}

	// Token sentinels ("-", "NAN") must match the whole text; phrase
	// sentinels ("NAO INFORMADO") may appear inside a longer description.
	for _, sentinel := range c.MissingSentinels {
		if normalized == sentinel {
			return "", false
		}
		if strings.Contains(sentinel, " ") && strings.Contains(normalized, sentinel) {
			return "", false
		}
	}

	// Rules run in configured priority order; the first match wins.
	for _, rule := range c.Rules {
		if rule.Pattern.MatchString(normalized) {
			return rule.Index, true
		}
	}

	// A bare leading percentage with no named index is fixed-rate by
	// convention ("18,44% a.a.").
	if c.PercentDirect.MatchString(normalized) {
		return IndexPreFixado, true
	}

	return "", false
}
