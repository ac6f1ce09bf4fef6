// Package normalize turns raw phrases into lexicon-comparable tokens.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/numwords/internal/debug"
)

// Tokens normalises a phrase and splits it into tokens.
func Tokens(phrase string) []string {
	return TokensDebug(false, phrase)
}

// TokensDebug normalises a phrase with optional debug output.
//
// The phrase is NFKC-normalised and case-folded; punctuation (commas,
// hyphens, full stops) and control characters become spaces, so
// "Forty-Two" yields [forty two].
func TokensDebug(localDebug bool, phrase string) []string {
	debug.DebugHeader(localDebug)
	defer debug.DebugFooter(localDebug)

	if strings.TrimSpace(phrase) == "" {
		return []string{}
	}

	s := norm.NFKC.String(phrase)
	s = cases.Fold().String(s)
	debug.DebugOutput(localDebug, "Folded: %s", s)

	s = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)

	tokens := strings.Fields(s)
	debug.DebugTokens(localDebug, "Tokens", tokens)
	return tokens
}

// Canonical returns the normalised phrase with single spaces between tokens.
func Canonical(phrase string) string {
	return strings.Join(Tokens(phrase), " ")
}
