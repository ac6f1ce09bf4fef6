package fuzzy

// Corrector rewrites tokens to their canonical spelling.
type Corrector struct {
	matcher *Matcher

	// keywords are checked before the matcher, e.g. the decimal separator.
	keywords []string
}

// NewCorrector creates a corrector over a matcher. Keywords that are not
// lexicon words (such as "point") are corrected with the same threshold and
// take priority over number words.
func NewCorrector(matcher *Matcher, keywords ...string) *Corrector {
	return &Corrector{
		matcher:  matcher,
		keywords: keywords,
	}
}

// Correct corrects each token independently. Tokens that cannot be resolved
// are left as they are. The returned slice is a new slice.
func (c *Corrector) Correct(tokens []string) ([]string, []CorrectionResult) {
	out := make([]string, len(tokens))
	var corrections []CorrectionResult

	for i, token := range tokens {
		result := c.CorrectToken(token)
		out[i] = result.Corrected
		if result.WasCorrected {
			corrections = append(corrections, result)
		}
	}

	return out, corrections
}

// CorrectToken corrects a single token and returns the correction result.
func (c *Corrector) CorrectToken(token string) CorrectionResult {
	unchanged := CorrectionResult{Original: token, Corrected: token}

	for _, kw := range c.keywords {
		if token == kw {
			return unchanged
		}
		if d := Distance(token, kw); d <= c.matcher.config.MaxEditDistance {
			return CorrectionResult{Original: token, Corrected: kw, Distance: d, WasCorrected: true}
		}
	}

	match := c.matcher.Match(token)
	if !match.Matched || match.Distance == 0 {
		return unchanged
	}

	return CorrectionResult{
		Original:     token,
		Corrected:    match.Word,
		Distance:     match.Distance,
		WasCorrected: true,
	}
}
