package numwords

import (
	"math"
	"math/bits"

	"github.com/numwords/internal/lexicon"
	"github.com/numwords/internal/normalize"
)

// ParseInt reads an English number name. Case and surrounding whitespace are
// ignored and each word may carry one spelling mistake; the sign marker
// "negative" may carry two and is only valid as the first word.
//
// Failures are ErrInvalidInput, a *SuggestionError or ErrOutOfRange.
func (c *Codec) ParseInt(text string) (int64, error) {
	tokens := normalize.Tokens(text)
	if len(tokens) == 0 {
		return 0, ErrInvalidInput
	}

	return c.parseWhole(tokens)
}

// parseWhole parses a complete integer phrase. The sign marker must be
// followed by at least one unit or tens word, so "negative", "negative and"
// and "negative hundred" are not numbers.
func (c *Codec) parseWhole(tokens []string) (int64, error) {
	p, err := c.parseTokens(tokens)
	if err != nil {
		return 0, err
	}
	if p.negative && !p.valued {
		return 0, ErrInvalidInput
	}
	return signed(p.magnitude, p.negative)
}

// phrase is the folded value of a token run.
type phrase struct {
	magnitude uint64
	negative  bool

	// valued reports whether a unit or tens word was seen.
	valued bool
}

// parseTokens folds tokens into a magnitude and sign.
//
// current accumulates the group since the last thousand-or-larger scale;
// "hundred" multiplies within the group. Larger scales commit the group to
// result, so groups may follow each other in any number and a trailing group
// needs no scale word.
func (c *Codec) parseTokens(tokens []string) (phrase, error) {
	var current, result uint64
	var p phrase

	for i, token := range tokens {
		match := c.matcher.Match(token)
		if match.Negation {
			if i == 0 {
				p.negative = true
				continue
			}
			return phrase{}, ErrInvalidInput
		}
		if !match.Matched {
			return phrase{}, &SuggestionError{
				Token:      token,
				Suggestion: match.Word,
				Distance:   match.Distance,
			}
		}

		entry, _ := c.lex.Lookup(match.Word)
		if entry.Role == lexicon.RoleUnit || entry.Role == lexicon.RoleTens {
			p.valued = true
		}

		var ok bool
		current, ok = mulAdd(current, uint64(entry.Multiplier), uint64(entry.Increment))
		if !ok {
			return phrase{}, ErrOutOfRange
		}

		if entry.Multiplier > 100 {
			if result, ok = add(result, current); !ok {
				return phrase{}, ErrOutOfRange
			}
			current = 0
		}
	}

	var ok bool
	if p.magnitude, ok = add(result, current); !ok {
		return phrase{}, ErrOutOfRange
	}
	return p, nil
}

// signed applies the sign, rejecting magnitudes outside int64.
func signed(magnitude uint64, negative bool) (int64, error) {
	if !negative {
		if magnitude > math.MaxInt64 {
			return 0, ErrOutOfRange
		}
		return int64(magnitude), nil
	}

	switch {
	case magnitude == 0:
		return 0, nil
	case magnitude > 1<<63:
		return 0, ErrOutOfRange
	}
	return -int64(magnitude-1) - 1, nil
}

func mulAdd(a, m, inc uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, m)
	if hi != 0 {
		return 0, false
	}
	return add(lo, inc)
}

func add(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}
