package gtfs

import (
	"regexp"
	"strings"
)

// Display normalization for free-text fields: East-Asian full-width
// alphanumerics become their half-width equivalents, full-width parentheses
// become ASCII ones, and a space is guaranteed between a parenthesis and an
// adjacent non-space character.

var (
	fullWidthParens = regexp.MustCompile(`（(.*)）`)
	tightOpenParen  = regexp.MustCompile(`(\S)\(`)
	tightCloseParen = regexp.MustCompile(`\)(\S)`)
)

func narrowRune(r rune) rune {
	// Ａ-Ｚ ａ-ｚ ０-９
	if (r >= 0xFF21 && r <= 0xFF3A) || (r >= 0xFF41 && r <= 0xFF5A) || (r >= 0xFF10 && r <= 0xFF19) {
		return r - 0xFEE0
	}
	return r
}

// toHalfWidth normalizes a free-text field for display. Blank input stays
// blank.
func toHalfWidth(s string) string {
	if s == "" {
		return s
	}
	s = strings.Map(narrowRune, s)
	s = fullWidthParens.ReplaceAllString(s, "($1)")
	s = tightOpenParen.ReplaceAllString(s, "$1 (")
	s = tightCloseParen.ReplaceAllString(s, ") $1")
	return s
}
