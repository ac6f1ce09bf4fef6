// Package numwords converts between integers or decimals and their English
// names, tolerating one spelling mistake per word.
//
//	codec := numwords.New(lexicon.Default())
//	codec.FormatInt(142)                 // "one hundred forty two"
//	codec.ParseInt("frty twoo")          // 42
//	codec.FormatDecimal(3.14, 2)         // "three point one four"
//	codec.ParseDecimal("zero point four two") // 0.42
//
// A Codec never changes after New, so one value may be shared by any number
// of goroutines.
package numwords

import (
	"strings"

	"github.com/numwords/internal/fuzzy"
	"github.com/numwords/internal/lexicon"
	"github.com/numwords/internal/normalize"
)

// Codec formats and parses number names over one lexicon.
type Codec struct {
	lex       *lexicon.Lexicon
	matcher   *fuzzy.Matcher
	corrector *fuzzy.Corrector
}

// New creates a codec. A nil lexicon selects lexicon.Default().
func New(lex *lexicon.Lexicon) *Codec {
	if lex == nil {
		lex = lexicon.Default()
	}

	matcher := fuzzy.NewMatcher(lex.Words(), fuzzy.DefaultConfig())
	return &Codec{
		lex:       lex,
		matcher:   matcher,
		corrector: fuzzy.NewCorrector(matcher, lexicon.PointWord),
	}
}

// Lexicon returns the codec's word tables.
func (c *Codec) Lexicon() *lexicon.Lexicon {
	return c.lex
}

// Canonicalize rewrites every token the parser would accept as a misspelling
// ("frty", "negativ", "poin") to its canonical spelling. Tokens that cannot
// be resolved are kept, so parsing the result fails the same way.
func (c *Codec) Canonicalize(text string) (string, []fuzzy.CorrectionResult) {
	tokens, corrections := c.corrector.Correct(normalize.Tokens(text))
	return strings.Join(tokens, " "), corrections
}
