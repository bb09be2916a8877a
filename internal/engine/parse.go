package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeToken trims a typed aura token and folds compatibility forms, so a
// full-width "２２２" reads as "222".
func NormalizeToken(raw string) string {
	return strings.TrimSpace(norm.NFKC.String(raw))
}

// SplitTokens breaks aura input on commas, pipes and whitespace, dropping empty parts.
func SplitTokens(raw string) []string {
	return strings.FieldsFunc(norm.NFKC.String(raw), func(r rune) bool {
		return r == ',' || r == '|' || unicode.IsSpace(r)
	})
}

// BaseDigit reduces a token to its base digit. A token made of one repeated
// character uses that character; otherwise the first in-domain digit wins.
func BaseDigit(token string) (int, bool) {
	s := NormalizeToken(token)
	if s == "" {
		return 0, false
	}
	if strings.Count(s, s[:1]) == len(s) {
		if n, ok := auraDigit(rune(s[0])); ok {
			return n, true
		}
	}
	for _, r := range s {
		if n, ok := auraDigit(r); ok {
			return n, true
		}
	}
	return 0, false
}

func auraDigit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	n := int(r - '0')
	return n, InAuraDomain(n)
}
