package costofdebt

import (
	"regexp"
	"strconv"
	"strings"
)

var currencyRe = regexp.MustCompile(`(?i)R?\$`)

// ParseLocaleNumber parses a declared monetary value whose format is
// inconsistent across source spreadsheets: Brazilian locale
// ("1.234,56"), plain floats ("1234.56"), bare integers with thousands
// separators ("2.000") and currency prefixes ("R$ 1.500,00").
//
// Heuristics, in order:
//   - currency symbols and spaces are stripped;
//   - if both '.' and ',' appear, the rightmost one is the decimal
//     separator and the other marks thousands;
//   - a lone ',' is a decimal separator;
//   - a lone '.' is a thousands separator when followed by exactly three
//     digits at the end ("2.000" -> 2000), a decimal separator otherwise.
//
// The second return is false when nothing numeric could be parsed.
func ParseLocaleNumber(raw string) (float64, bool) {
	s := currencyRe.ReplaceAllString(strings.TrimSpace(raw), "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	switch {
	case hasDot && hasComma:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			// 1.234,56 — dots are thousands separators.
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// 1,234.56 — commas are thousands separators.
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		if strings.Count(s, ",") > 1 {
			// 1,234,567 — thousands separators.
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case hasDot:
		if thousandsDotRe.MatchString(s) {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// thousandsDotRe matches numbers whose dots all group exactly three
// digits ("2.000", "12.345.678"), the Brazilian thousands convention.
var thousandsDotRe = regexp.MustCompile(`^-?\d{1,3}(?:\.\d{3})+$`)
