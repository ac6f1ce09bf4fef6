package numwords

import (
	"errors"
	"fmt"
)

// The messages are part of the package contract and are matched verbatim
// by callers.
var (
	// ErrInvalidInput reports a misplaced sign marker or an empty phrase.
	ErrInvalidInput = errors.New("Invalid input")

	// ErrInvalidTail reports a token after "point" that is not a single digit.
	ErrInvalidTail = errors.New("Invalid value in tail string.")

	// ErrOutOfRange reports a value that needs a scale word beyond the
	// lexicon or does not fit in an int64.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnknownWord is the sentinel behind every SuggestionError.
	ErrUnknownWord = errors.New("unknown word")
)

// SuggestionError reports a token that could not be resolved, with the
// closest known word.
type SuggestionError struct {
	// Token is the offending input token.
	Token string

	// Suggestion is the proposed correction.
	Suggestion string

	// Distance is the edit distance from Token to Suggestion.
	Distance int
}

func (e *SuggestionError) Error() string {
	return fmt.Sprintf("Did you mean %s?", e.Suggestion)
}

// Unwrap lets errors.Is match ErrUnknownWord.
func (e *SuggestionError) Unwrap() error {
	return ErrUnknownWord
}
