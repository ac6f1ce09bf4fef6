package fuzzy

// Matcher resolves tokens against a fixed word list. It is read-only after
// construction and safe for concurrent use.
type Matcher struct {
	// words keeps lookup order; the first of several equally close words wins.
	words  []string
	known  map[string]struct{}
	config *Config
}

// NewMatcher creates a matcher over words. A nil config uses DefaultConfig.
func NewMatcher(words []string, config *Config) *Matcher {
	if config == nil {
		config = DefaultConfig()
	}

	m := &Matcher{
		words:  make([]string, 0, len(words)),
		known:  make(map[string]struct{}, len(words)),
		config: config,
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, dup := m.known[w]; dup {
			continue
		}
		m.known[w] = struct{}{}
		m.words = append(m.words, w)
	}
	return m
}

// Config returns the matcher's thresholds.
func (m *Matcher) Config() Config {
	return *m.config
}

// Contains reports whether token is a lexicon word exactly.
func (m *Matcher) Contains(token string) bool {
	_, ok := m.known[token]
	return ok
}

// Nearest returns the closest word to token. Ties go to the word listed
// first. The zero Suggestion is returned for an empty word list.
func (m *Matcher) Nearest(token string) Suggestion {
	best := Suggestion{Distance: -1}
	for _, w := range m.words {
		d := Distance(token, w)
		if best.Distance < 0 || d < best.Distance {
			best = Suggestion{Term: w, Distance: d}
			if d == 0 {
				break
			}
		}
	}
	if best.Distance < 0 {
		return Suggestion{}
	}
	return best
}

// IsNegation reports whether token reads as the sign marker, and its
// distance from it.
func (m *Matcher) IsNegation(token string) (bool, int) {
	d := Distance(token, m.config.NegationWord)
	return d < m.config.NegationDistance, d
}

// Match resolves a token.
//
// The sign marker is tested first with its looser threshold. Otherwise an
// exact word is returned unchanged, and the nearest word is accepted when
// within MaxEditDistance. On failure Word carries the suggestion: the sign
// marker when the token is within NegationHintDistance of it, else the
// nearest word.
func (m *Matcher) Match(token string) MatchResult {
	negation, negDistance := m.IsNegation(token)
	if negation {
		return MatchResult{
			Token:    token,
			Word:     m.config.NegationWord,
			Distance: negDistance,
			Matched:  true,
			Negation: true,
		}
	}

	if m.Contains(token) {
		return MatchResult{Token: token, Word: token, Matched: true}
	}

	nearest := m.Nearest(token)
	if nearest.Term != "" && nearest.Distance <= m.config.MaxEditDistance {
		return MatchResult{
			Token:    token,
			Word:     nearest.Term,
			Distance: nearest.Distance,
			Matched:  true,
		}
	}

	if negDistance < m.config.NegationHintDistance {
		return MatchResult{Token: token, Word: m.config.NegationWord, Distance: negDistance}
	}
	return MatchResult{Token: token, Word: nearest.Term, Distance: nearest.Distance}
}
