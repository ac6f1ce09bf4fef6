package numwords

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/numwords/internal/fuzzy"
	"github.com/numwords/internal/lexicon"
	"github.com/numwords/internal/normalize"
)

var maxHead = decimal.NewFromInt(math.MaxInt64)

// FormatDecimal spells out v with precision fractional digits, each digit
// as its own word: FormatDecimal(3.14, 2) is "three point one four".
//
// v is read at its shortest decimal representation, so 1.005 rounds to
// "one point zero one". Rounding is half away from zero. The head is
// truncated toward zero and carries the sign; a negative value with a zero
// head reads "negative zero point ...". A value that rounds to zero is
// unsigned. With precision 0, or when v has no fractional part, only the
// rounded integer is spelled.
func (c *Codec) FormatDecimal(v float64, precision uint8) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("formatting %v: %w", v, ErrOutOfRange)
	}

	d := decimal.NewFromFloat(v)
	negative := d.IsNegative()
	d = d.Abs()

	if precision == 0 || d.Equal(d.Truncate(0)) {
		return c.formatHead(d.Round(0), negative, false)
	}

	places := int32(precision)
	rounded := d.Round(places)
	if rounded.IsZero() {
		negative = false
	}
	head := rounded.Truncate(0)
	tail := strings.TrimPrefix(rounded.Sub(head).StringFixed(places), "0.")

	headWords, err := c.formatHead(head, negative, true)
	if err != nil {
		return "", err
	}

	words := make([]string, 0, len(tail)+2)
	words = append(words, headWords, lexicon.PointWord)
	for _, r := range tail {
		words = append(words, c.lex.Digit(int(r-'0')))
	}
	return strings.Join(words, " "), nil
}

// formatHead spells a non-negative integral head. keepSign forces the sign
// marker for a zero head.
func (c *Codec) formatHead(head decimal.Decimal, negative, keepSign bool) (string, error) {
	if head.GreaterThan(maxHead) {
		return "", fmt.Errorf("formatting %s: %w", head, ErrOutOfRange)
	}

	n := head.IntPart()
	words, err := c.FormatInt(n)
	if err != nil {
		return "", err
	}
	if negative && (n != 0 || keepSign) {
		words = lexicon.NegationWord + " " + words
	}
	return words, nil
}

// ParseDecimal reads a number name with an optional "point" followed by
// single-digit words: "negative three point one four" is -3.14.
//
// A token one edit away from "point" fails with "Did you mean point?" before
// anything else is parsed. Tail tokens must each name a digit 0-9, otherwise
// ErrInvalidTail is returned. Without a "point" the result is ParseInt's.
func (c *Codec) ParseDecimal(text string) (float64, error) {
	tokens := normalize.Tokens(text)
	if len(tokens) == 0 {
		return 0, ErrInvalidInput
	}

	split := -1
	maxDistance := c.matcher.Config().MaxEditDistance
	for i, token := range tokens {
		if token == lexicon.PointWord {
			if split < 0 {
				split = i
			}
			continue
		}
		if d := fuzzy.Distance(token, lexicon.PointWord); d <= maxDistance {
			return 0, &SuggestionError{Token: token, Suggestion: lexicon.PointWord, Distance: d}
		}
	}

	if split < 0 {
		n, err := c.parseWhole(tokens)
		return float64(n), err
	}

	head, err := c.parseTokens(tokens[:split])
	if err != nil {
		return 0, err
	}
	if _, err := signed(head.magnitude, head.negative); err != nil {
		return 0, err
	}

	tail := tokens[split+1:]
	if len(tail) == 0 {
		return 0, ErrInvalidTail
	}

	digits := make([]byte, 0, len(tail))
	for _, token := range tail {
		digit, err := c.parseDigit(token)
		if err != nil {
			return 0, err
		}
		digits = append(digits, byte('0'+digit))
	}

	value, err := decimal.NewFromString(strconv.FormatUint(head.magnitude, 10) + "." + string(digits))
	if err != nil {
		return 0, fmt.Errorf("assembling decimal: %w", err)
	}
	if head.negative {
		value = value.Neg()
	}

	f, _ := value.Float64()
	return f, nil
}

// parseDigit resolves one tail token to a digit word.
func (c *Codec) parseDigit(token string) (int, error) {
	if token == lexicon.PointWord {
		return 0, ErrInvalidTail
	}

	match := c.matcher.Match(token)
	if match.Negation {
		return 0, ErrInvalidTail
	}
	if !match.Matched {
		return 0, &SuggestionError{Token: token, Suggestion: match.Word, Distance: match.Distance}
	}

	entry, _ := c.lex.Lookup(match.Word)
	if entry.Role != lexicon.RoleUnit || entry.Increment > 9 {
		return 0, ErrInvalidTail
	}
	return int(entry.Increment), nil
}
