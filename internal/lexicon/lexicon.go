package lexicon

import (
	"errors"
	"fmt"

	"github.com/numwords/internal/fuzzy"
)

// ErrInvalidLexicon is returned when word tables break a lexicon invariant.
var ErrInvalidLexicon = errors.New("invalid lexicon")

const (
	unitCount = 20
	tensCount = 10

	minScales = 2
	// maxScales stops at 10^18, the largest power of a thousand an int64 holds.
	maxScales = 7
)

var (
	defaultUnits = []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	defaultTens = []string{
		"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	}
	defaultScales = []string{
		"hundred", "thousand", "million", "billion", "trillion", "quadrillion",
	}
)

// Lexicon is an immutable set of number words.
type Lexicon struct {
	units  []string
	tens   []string
	scales []string

	// words lists every lookup word in table order: units, tens, scales, "and".
	words   []string
	entries map[string]Entry
}

var defaultLexicon = mustNew(defaultUnits, defaultTens, defaultScales)

// Default returns the built-in English lexicon (hundred through quadrillion).
func Default() *Lexicon {
	return defaultLexicon
}

func mustNew(units, tens, scales []string) *Lexicon {
	lex, err := New(units, tens, scales)
	if err != nil {
		panic(err)
	}
	return lex
}

// New validates the three word tables and builds a Lexicon from copies of them.
//
// units must hold 20 words (index = value), tens 10 entries with indices 0
// and 1 empty, and scales between 2 and 7 words in increasing magnitude
// starting with the word for 100. Words the matcher could confuse with the
// sign or decimal marker are rejected: anything closer than the negation
// threshold to "negative", or within one edit of "point".
func New(units, tens, scales []string) (*Lexicon, error) {
	if len(units) != unitCount {
		return nil, fmt.Errorf("%w: want %d units, got %d", ErrInvalidLexicon, unitCount, len(units))
	}
	if len(tens) != tensCount {
		return nil, fmt.Errorf("%w: want %d tens, got %d", ErrInvalidLexicon, tensCount, len(tens))
	}
	if tens[0] != "" || tens[1] != "" {
		return nil, fmt.Errorf("%w: tens entries 0 and 1 must be empty", ErrInvalidLexicon)
	}
	if len(scales) < minScales || len(scales) > maxScales {
		return nil, fmt.Errorf("%w: want %d to %d scales, got %d", ErrInvalidLexicon, minScales, maxScales, len(scales))
	}

	lex := &Lexicon{
		units:   append([]string(nil), units...),
		tens:    append([]string(nil), tens...),
		scales:  append([]string(nil), scales...),
		entries: make(map[string]Entry, len(units)+len(tens)+len(scales)+1),
	}

	cfg := fuzzy.DefaultConfig()
	add := func(e Entry) error {
		if !isWord(e.Word) {
			return fmt.Errorf("%w: %s word %q must be lowercase letters", ErrInvalidLexicon, e.Role, e.Word)
		}
		switch e.Word {
		case NegationWord, PointWord:
			return fmt.Errorf("%w: %q is reserved", ErrInvalidLexicon, e.Word)
		}
		if fuzzy.Distance(e.Word, NegationWord) < cfg.NegationDistance {
			return fmt.Errorf("%w: %q is too close to reserved word %q", ErrInvalidLexicon, e.Word, NegationWord)
		}
		if fuzzy.Distance(e.Word, PointWord) <= cfg.MaxEditDistance {
			return fmt.Errorf("%w: %q is too close to reserved word %q", ErrInvalidLexicon, e.Word, PointWord)
		}
		if _, dup := lex.entries[e.Word]; dup {
			return fmt.Errorf("%w: duplicate word %q", ErrInvalidLexicon, e.Word)
		}
		lex.entries[e.Word] = e
		lex.words = append(lex.words, e.Word)
		return nil
	}

	for i, w := range units {
		if err := add(Entry{Word: w, Role: RoleUnit, Multiplier: 1, Increment: int64(i)}); err != nil {
			return nil, err
		}
	}
	for i := 2; i < tensCount; i++ {
		if err := add(Entry{Word: tens[i], Role: RoleTens, Multiplier: 1, Increment: int64(i) * 10}); err != nil {
			return nil, err
		}
	}
	for i, w := range scales {
		if err := add(Entry{Word: w, Role: RoleScale, Multiplier: scaleMagnitude(i), Increment: 0}); err != nil {
			return nil, err
		}
	}
	if err := add(Entry{Word: ConnectiveWord, Role: RoleConnective, Multiplier: 1, Increment: 0}); err != nil {
		return nil, err
	}

	return lex, nil
}

// scaleMagnitude returns 10^2 for the first scale and 10^(3i) afterwards.
func scaleMagnitude(i int) int64 {
	if i == 0 {
		return 100
	}
	m := int64(1)
	for k := 0; k < i; k++ {
		m *= 1000
	}
	return m
}

func isWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Unit returns the word for n in [0, 19].
func (l *Lexicon) Unit(n int) string { return l.units[n] }

// Tens returns the word for n*10, n in [2, 9].
func (l *Lexicon) Tens(n int) string { return l.tens[n] }

// Digit returns the single-digit word for d in [0, 9].
func (l *Lexicon) Digit(d int) string { return l.units[d] }

// Zero returns the word for 0.
func (l *Lexicon) Zero() string { return l.units[0] }

// Hundred returns the scale word for 100.
func (l *Lexicon) Hundred() string { return l.scales[0] }

// GroupScale returns the scale word for the base-1000 group g (g >= 1):
// thousand for 1, million for 2, and so on.
func (l *Lexicon) GroupScale(g int) string { return l.scales[g] }

// Groups is the number of base-1000 groups the lexicon can name, including
// the unscaled least-significant group.
func (l *Lexicon) Groups() int { return len(l.scales) }

// Lookup returns the entry for an exact canonical word.
func (l *Lexicon) Lookup(word string) (Entry, bool) {
	e, ok := l.entries[word]
	return e, ok
}

// Words returns every lookup word in table order. The slice is a copy.
func (l *Lexicon) Words() []string {
	return append([]string(nil), l.words...)
}

// Entries returns every entry in table order.
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, len(l.words))
	for i, w := range l.words {
		out[i] = l.entries[w]
	}
	return out
}

// Stats returns table sizes and the largest scale multiplier.
func (l *Lexicon) Stats() Stats {
	return Stats{
		Units:    len(l.units),
		Tens:     tensCount - 2,
		Scales:   len(l.scales),
		Words:    len(l.words),
		MaxScale: scaleMagnitude(len(l.scales) - 1),
	}
}

// Spec returns the word tables in the form lexicon sources use.
func (l *Lexicon) Spec() Spec {
	return Spec{
		Units:  append([]string(nil), l.units...),
		Tens:   append([]string(nil), l.tens...),
		Scales: append([]string(nil), l.scales...),
	}
}
