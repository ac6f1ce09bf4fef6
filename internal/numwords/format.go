package numwords

import (
	"fmt"
	"strings"

	"github.com/numwords/internal/lexicon"
)

// FormatInt spells out n, e.g. -7396 as
// "negative seven thousand three hundred ninety six".
//
// ErrOutOfRange is returned when |n| needs a scale word the lexicon does not
// have (10^18 and above with the default lexicon).
func (c *Codec) FormatInt(n int64) (string, error) {
	if n == 0 {
		return c.lex.Zero(), nil
	}

	negative := n < 0
	magnitude := uint64(n)
	if negative {
		magnitude = uint64(-(n + 1)) + 1
	}

	words, err := c.magnitudeWords(magnitude)
	if err != nil {
		return "", fmt.Errorf("formatting %d: %w", n, err)
	}
	if negative {
		words = append([]string{lexicon.NegationWord}, words...)
	}
	return strings.Join(words, " "), nil
}

// magnitudeWords renders a non-zero magnitude most significant group first.
func (c *Codec) magnitudeWords(magnitude uint64) ([]string, error) {
	// Little-endian base-1000 groups.
	var groups []int
	for m := magnitude; m > 0; m /= 1000 {
		groups = append(groups, int(m%1000))
	}
	if len(groups) > c.lex.Groups() {
		return nil, ErrOutOfRange
	}

	var words []string
	for g := len(groups) - 1; g >= 0; g-- {
		if groups[g] == 0 {
			continue
		}
		words = c.appendGroup(words, groups[g])
		if g > 0 {
			words = append(words, c.lex.GroupScale(g))
		}
	}
	return words, nil
}

// appendGroup renders 1..999 as "<unit> hundred", a teen, or "<tens> <unit>".
func (c *Codec) appendGroup(words []string, n int) []string {
	if n >= 100 {
		words = append(words, c.lex.Unit(n/100), c.lex.Hundred())
		n %= 100
	}

	switch {
	case n == 0:
	case n < 20:
		words = append(words, c.lex.Unit(n))
	default:
		words = append(words, c.lex.Tens(n/10))
		if n%10 != 0 {
			words = append(words, c.lex.Unit(n%10))
		}
	}
	return words
}
