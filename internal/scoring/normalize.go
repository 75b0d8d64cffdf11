package scoring

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize canonicalizes a submitted or stored answer for comparison.
// Only the first value of a multi-valued field is considered. The value is
// trimmed and lowercased; when it starts with a letter it collapses to that
// single letter, so "A", "a.", "A) some text" all compare as "a". Answers
// starting with a digit or symbol compare as their full trimmed text.
//
// The same function must be applied to both sides of the comparison.
func Normalize(values []string) string {
	if len(values) == 0 {
		return ""
	}

	s := strings.ToLower(strings.TrimSpace(values[0]))
	if s == "" {
		return ""
	}

	if r, _ := utf8.DecodeRuneInString(s); unicode.IsLetter(r) {
		return string(r)
	}
	return s
}

// NormalizeOne is Normalize over a single value.
func NormalizeOne(value string) string {
	return Normalize([]string{value})
}
