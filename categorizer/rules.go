package categorizer

import "strings"

// KeywordRule maps a label to the substrings that trigger it.
type KeywordRule struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords,flow"`
}

// KeywordTable is an ordered list of rules. The first rule with a matching
// keyword wins; Fallback is returned when nothing matches.
type KeywordTable struct {
	fallback string
	rules    []compiledRule
}

type compiledRule struct {
	label    string
	keywords []string
}

// NewKeywordTable compiles rules in the given order. Keywords are lowercased
// once here so matching only has to lowercase the input text.
func NewKeywordTable(fallback string, rules []KeywordRule) *KeywordTable {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		compiled = append(compiled, compiledRule{
			label:    rule.Label,
			keywords: normalizeKeywordList(rule.Keywords),
		})
	}
	return &KeywordTable{fallback: fallback, rules: compiled}
}

// Fallback returns the label used when no rule matches.
func (t *KeywordTable) Fallback() string {
	return t.fallback
}

// Labels returns the rule labels in priority order.
func (t *KeywordTable) Labels() []string {
	out := make([]string, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.label
	}
	return out
}

// Rules returns a copy of the compiled rules.
func (t *KeywordTable) Rules() []KeywordRule {
	out := make([]KeywordRule, len(t.rules))
	for i, r := range t.rules {
		out[i] = KeywordRule{Label: r.label, Keywords: cloneStrings(r.keywords)}
	}
	return out
}

// Match returns the first label whose keywords occur in text. text must
// already be lowercased.
func (t *KeywordTable) Match(text string) string {
	if text == "" {
		return t.fallback
	}
	for _, r := range t.rules {
		if containsAnyKeyword(text, r.keywords) {
			return r.label
		}
	}
	return t.fallback
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// normalizeKeywordList lowercases keywords, dropping blanks and duplicates.
// An empty keyword would match every text, so it never survives compilation.
func normalizeKeywordList(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(words))
	res := make([]string, 0, len(words))
	for _, w := range words {
		normed := lowerText(w)
		if normed == "" {
			continue
		}
		if _, ok := seen[normed]; ok {
			continue
		}
		seen[normed] = struct{}{}
		res = append(res, normed)
	}
	return res
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
