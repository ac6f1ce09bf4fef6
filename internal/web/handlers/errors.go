package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/numwords/internal/numwords"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidInput = "PARSE_001"
	CodeSuggestion   = "PARSE_002"
	CodeInvalidTail  = "PARSE_003"
	CodeOutOfRange   = "RANGE_001"
	CodeValidation   = "VALIDATION_001"
	CodeInternal     = "SYSTEM_001"
	CodeRateLimited  = "SYSTEM_006"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code"`
	Suggestion string `json:"suggestion,omitempty"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// writeConversionError maps codec errors to a status and code. It returns the
// code for metrics.
func writeConversionError(w http.ResponseWriter, err error) string {
	var suggestion *numwords.SuggestionError

	switch {
	case errors.As(err, &suggestion):
		WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:      suggestion.Error(),
			Code:       CodeSuggestion,
			Suggestion: suggestion.Suggestion,
		})
		return CodeSuggestion
	case errors.Is(err, numwords.ErrInvalidInput):
		WriteError(w, http.StatusUnprocessableEntity, CodeInvalidInput, numwords.ErrInvalidInput.Error())
		return CodeInvalidInput
	case errors.Is(err, numwords.ErrInvalidTail):
		WriteError(w, http.StatusUnprocessableEntity, CodeInvalidTail, numwords.ErrInvalidTail.Error())
		return CodeInvalidTail
	case errors.Is(err, numwords.ErrOutOfRange):
		WriteError(w, http.StatusUnprocessableEntity, CodeOutOfRange, err.Error())
		return CodeOutOfRange
	}

	WriteError(w, http.StatusInternalServerError, CodeInternal, "Internal error")
	return CodeInternal
}
