package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/numwords/internal/debug"
	"github.com/numwords/internal/fuzzy"
	"github.com/numwords/internal/lexicon"
	"github.com/numwords/internal/numwords"
)

// Config holds the handler settings (kept apart from web.Config to avoid an
// import cycle).
type Config struct {
	Precision uint8
	Debug     bool
}

// Recorder receives one observation per conversion. status is "ok" or an
// error code.
type Recorder interface {
	ObserveConversion(operation, status string, elapsed time.Duration)
}

// ConvertHandler serves the conversion endpoints over one codec.
type ConvertHandler struct {
	Codec    *numwords.Codec
	Config   *Config
	Recorder Recorder
}

// TextRequest carries a phrase to parse or correct.
type TextRequest struct {
	Text string `json:"text" validate:"required,max=2048"`
}

// FormatDecimalRequest carries a value to spell out. A missing precision
// selects the configured default.
type FormatDecimalRequest struct {
	Value     *float64 `json:"value" validate:"required"`
	Precision *uint8   `json:"precision" validate:"omitempty,max=30"`
}

// IntegerResponse pairs an integer with its words.
type IntegerResponse struct {
	Text  string `json:"text,omitempty"`
	Value int64  `json:"value"`
	Words string `json:"words,omitempty"`
}

// DecimalResponse pairs a decimal with its words.
type DecimalResponse struct {
	Text      string  `json:"text,omitempty"`
	Value     float64 `json:"value"`
	Precision *uint8  `json:"precision,omitempty"`
	Words     string  `json:"words,omitempty"`
}

// CorrectResponse is the canonical phrase and the corrections applied.
type CorrectResponse struct {
	Text        string                   `json:"text"`
	Corrected   string                   `json:"corrected"`
	Corrections []fuzzy.CorrectionResult `json:"corrections"`
}

// LexiconResponse lists the active words.
type LexiconResponse struct {
	Stats   lexicon.Stats   `json:"stats"`
	Entries []lexicon.Entry `json:"entries"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// FormatInteger handles GET /api/integers/{value}.
func (h *ConvertHandler) FormatInteger(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["value"]
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, CodeValidation, "value must be a 64-bit integer")
		return
	}

	start := time.Now()
	words, err := h.Codec.FormatInt(n)
	if err != nil {
		h.observe("format_integer", writeConversionError(w, err), start)
		return
	}
	h.observe("format_integer", "ok", start)

	debug.DebugOutput(h.Config.Debug, "format_integer %d -> %q", n, words)
	WriteJSON(w, http.StatusOK, IntegerResponse{Value: n, Words: words})
}

// ParseInteger handles POST /api/integers/parse.
func (h *ConvertHandler) ParseInteger(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	n, err := h.Codec.ParseInt(req.Text)
	if err != nil {
		h.observe("parse_integer", writeConversionError(w, err), start)
		return
	}
	h.observe("parse_integer", "ok", start)

	debug.DebugOutput(h.Config.Debug, "parse_integer %q -> %d", req.Text, n)
	WriteJSON(w, http.StatusOK, IntegerResponse{Text: req.Text, Value: n})
}

// FormatDecimal handles POST /api/decimals/format.
func (h *ConvertHandler) FormatDecimal(w http.ResponseWriter, r *http.Request) {
	var req FormatDecimalRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	precision := h.Config.Precision
	if req.Precision != nil {
		precision = *req.Precision
	}

	start := time.Now()
	words, err := h.Codec.FormatDecimal(*req.Value, precision)
	if err != nil {
		h.observe("format_decimal", writeConversionError(w, err), start)
		return
	}
	h.observe("format_decimal", "ok", start)

	WriteJSON(w, http.StatusOK, DecimalResponse{Value: *req.Value, Precision: &precision, Words: words})
}

// ParseDecimal handles POST /api/decimals/parse.
func (h *ConvertHandler) ParseDecimal(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	v, err := h.Codec.ParseDecimal(req.Text)
	if err != nil {
		h.observe("parse_decimal", writeConversionError(w, err), start)
		return
	}
	h.observe("parse_decimal", "ok", start)

	WriteJSON(w, http.StatusOK, DecimalResponse{Text: req.Text, Value: v})
}

// Correct handles POST /api/correct.
func (h *ConvertHandler) Correct(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	corrected, corrections := h.Codec.Canonicalize(req.Text)
	h.observe("correct", "ok", start)

	if corrections == nil {
		corrections = []fuzzy.CorrectionResult{}
	}
	WriteJSON(w, http.StatusOK, CorrectResponse{
		Text:        req.Text,
		Corrected:   corrected,
		Corrections: corrections,
	})
}

// Lexicon handles GET /api/lexicon.
func (h *ConvertHandler) Lexicon(w http.ResponseWriter, r *http.Request) {
	lex := h.Codec.Lexicon()
	WriteJSON(w, http.StatusOK, LexiconResponse{
		Stats:   lex.Stats(),
		Entries: lex.Entries(),
	})
}

// Health handles GET /health.
func (h *ConvertHandler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"words":  h.Codec.Lexicon().Stats().Words,
	})
}

func (h *ConvertHandler) observe(operation, status string, start time.Time) {
	if h.Recorder != nil {
		h.Recorder.ObserveConversion(operation, status, time.Since(start))
	}
}

// decodeRequest decodes and validates a JSON body, writing a
// VALIDATION_001 response on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, CodeValidation, "Invalid JSON body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		WriteError(w, http.StatusBadRequest, CodeValidation, "Validation failed: "+err.Error())
		return false
	}
	return true
}
