// Package fuzzy resolves misspelled number words against a lexicon.
//
// Resolution is a linear nearest-neighbour scan using Levenshtein distance.
// The lexicon is small (around 35 words) so no delete index or automaton is
// built; a single scan costs a few microseconds.
package fuzzy

// Config holds matching thresholds.
type Config struct {
	// MaxEditDistance is the largest distance at which a token is accepted
	// as a misspelling of a lexicon word.
	// Default: 1
	MaxEditDistance int

	// NegationWord is the sign marker tested before general lookup.
	// Default: "negative"
	NegationWord string

	// NegationDistance: tokens strictly closer than this to NegationWord are
	// read as the sign marker.
	// Default: 3
	NegationDistance int

	// NegationHintDistance: unresolvable tokens strictly closer than this to
	// NegationWord get NegationWord as their suggestion instead of the
	// nearest number word.
	// Default: 5
	NegationHintDistance int
}

// DefaultConfig returns the thresholds used for English number words.
func DefaultConfig() *Config {
	return &Config{
		MaxEditDistance:      1,
		NegationWord:         "negative",
		NegationDistance:     3,
		NegationHintDistance: 5,
	}
}

// Suggestion is the nearest lexicon word to some input.
type Suggestion struct {
	// Term is the lexicon spelling.
	Term string

	// Distance is the edit distance from the input to Term.
	Distance int
}

// MatchResult is the outcome of resolving one token.
type MatchResult struct {
	// Token is the input as given.
	Token string

	// Word is the resolved canonical word when Matched, otherwise the
	// suggested correction.
	Word string

	// Distance is the edit distance from Token to Word.
	Distance int

	// Matched reports whether Word was accepted.
	Matched bool

	// Negation reports whether the token was read as the sign marker.
	Negation bool
}

// CorrectionResult tracks what was corrected in a phrase.
type CorrectionResult struct {
	// Original is the input token before correction.
	Original string `json:"original"`

	// Corrected is the token after correction (same as Original if no correction).
	Corrected string `json:"corrected"`

	// Distance is the edit distance (0 if no correction needed).
	Distance int `json:"distance"`

	// WasCorrected indicates whether a correction was applied.
	WasCorrected bool `json:"was_corrected"`
}
