package costofdebt

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// accentStripper decomposes characters and drops combining marks, so
// "pré-fixado" and "pre-fixado" normalize identically.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText prepares free-text rate descriptions for pattern
// matching: trims, uppercases, strips accents and collapses whitespace.
// All configured patterns assume this normal form.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if stripped, _, err := transform.String(accentStripper, text); err == nil {
		text = stripped
	}
	text = strings.ToUpper(text)
	return whitespaceRe.ReplaceAllString(text, " ")
}
