package categorizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// lowerText applies full Unicode lowercasing and nothing else: no trimming,
// no punctuation stripping. Substring matching depends on this.
func lowerText(text string) string {
	if text == "" {
		return ""
	}
	// A Caser carries state and must not be shared across goroutines.
	return cases.Lower(language.Und).String(text)
}

// cleanHeader normalizes a header cell for column lookup.
func cleanHeader(v string) string {
	v = strings.TrimPrefix(v, "\ufeff")
	v = strings.TrimSpace(v)
	return norm.NFKC.String(v)
}
