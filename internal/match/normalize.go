package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for near-miss comparison: CamelCase is
// tokenized, separators (_, -, spaces) are dropped and everything is
// lowercased. "orderID", "Order_Id" and "order-id" all become "orderid".
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(tokenizeCamelCase(s), ""))
}

// NormalizeIdentWithSuffixStrip normalizes s and then strips one common
// suffix token (timestamp, ids, utc, id, at) when something remains.
func NormalizeIdentWithSuffixStrip(s string) string {
	normalized := NormalizeIdent(s)

	// Longer suffixes first so "ids" is not read as "id"
	for _, suffix := range []string{"timestamp", "ids", "utc", "id", "at"} {
		if len(normalized) > len(suffix) && strings.HasSuffix(normalized, suffix) {
			return strings.TrimSuffix(normalized, suffix)
		}
	}

	return normalized
}

// TokenizeIdent splits an identifier into lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
func tokenizeCamelCase(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsToken reports whether a new token starts at runes[i].
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID": lower to upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser": last capital of an acronym followed by lowercase
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
