package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numwords/internal/numwords"
	"github.com/numwords/internal/web/handlers"
)

func newTestServer(t *testing.T, mutate func(*Config)) http.Handler {
	t.Helper()
	cfg := DefaultConfig()
	cfg.RateLimit.RequestsPerSecond = 1000
	cfg.RateLimit.Burst = 1000
	if mutate != nil {
		mutate(cfg)
	}

	server, err := NewServer(cfg, numwords.New(nil))
	require.NoError(t, err)
	return server.Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestFormatIntegerRoute(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodGet, "/api/integers/-7396", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[handlers.IntegerResponse](t, rec)
	assert.Equal(t, int64(-7396), resp.Value)
	assert.Equal(t, "negative seven thousand three hundred ninety six", resp.Words)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestFormatIntegerOutOfRange(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodGet, "/api/integers/9223372036854775807", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, handlers.CodeOutOfRange, decode[handlers.ErrorResponse](t, rec).Code)

	rec = do(t, h, http.MethodGet, "/api/integers/99999999999999999999", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handlers.CodeValidation, decode[handlers.ErrorResponse](t, rec).Code)
}

func TestParseIntegerRoute(t *testing.T) {
	h := newTestServer(t, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantValue  int64
		wantCode   string
		wantError  string
		wantHint   string
	}{
		{
			name:       "parses",
			body:       `{"text":"One Hundred And Forty Two"}`,
			wantStatus: http.StatusOK,
			wantValue:  142,
		},
		{
			name:       "suggestion",
			body:       `{"text":"one hured"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   handlers.CodeSuggestion,
			wantError:  "Did you mean hundred?",
			wantHint:   "hundred",
		},
		{
			name:       "misplaced sign",
			body:       `{"text":"ten negative"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   handlers.CodeInvalidInput,
			wantError:  "Invalid input",
		},
		{
			name:       "missing text",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   handlers.CodeValidation,
		},
		{
			name:       "malformed json",
			body:       `{"text":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   handlers.CodeValidation,
		},
		{
			name:       "unknown field",
			body:       `{"text":"one","extra":1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   handlers.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/integers/parse", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantValue, decode[handlers.IntegerResponse](t, rec).Value)
				return
			}
			resp := decode[handlers.ErrorResponse](t, rec)
			assert.Equal(t, tt.wantCode, resp.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp.Error)
			}
			assert.Equal(t, tt.wantHint, resp.Suggestion)
		})
	}
}

func TestDecimalRoutes(t *testing.T) {
	h := newTestServer(t, func(c *Config) { c.Precision = 1 })

	rec := do(t, h, http.MethodPost, "/api/decimals/format", `{"value":3.14,"precision":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "three point one four", decode[handlers.DecimalResponse](t, rec).Words)

	rec = do(t, h, http.MethodPost, "/api/decimals/format", `{"value":3.14}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handlers.DecimalResponse](t, rec)
	assert.Equal(t, "three point one", resp.Words)
	require.NotNil(t, resp.Precision)
	assert.Equal(t, uint8(1), *resp.Precision)

	rec = do(t, h, http.MethodPost, "/api/decimals/format", `{"precision":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/decimals/parse", `{"text":"negative zero point five"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, -0.5, decode[handlers.DecimalResponse](t, rec).Value, 1e-9)

	rec = do(t, h, http.MethodPost, "/api/decimals/parse", `{"text":"three poin sixty two"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errResp := decode[handlers.ErrorResponse](t, rec)
	assert.Equal(t, "Did you mean point?", errResp.Error)
	assert.Equal(t, "point", errResp.Suggestion)

	rec = do(t, h, http.MethodPost, "/api/decimals/parse", `{"text":"three point sixty two"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errResp = decode[handlers.ErrorResponse](t, rec)
	assert.Equal(t, handlers.CodeInvalidTail, errResp.Code)
	assert.Equal(t, "Invalid value in tail string.", errResp.Error)
}

func TestCorrectRoute(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/correct", `{"text":"negativ frty twoo"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[handlers.CorrectResponse](t, rec)
	assert.Equal(t, "negative forty two", resp.Corrected)
	assert.Len(t, resp.Corrections, 3)

	disabled := newTestServer(t, func(c *Config) { c.Features.CorrectEnabled = false })
	rec = do(t, disabled, http.MethodPost, "/api/correct", `{"text":"frty"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLexiconAndHealthRoutes(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodGet, "/api/lexicon", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"scale"`)
	assert.Contains(t, rec.Body.String(), `"word":"quadrillion"`)

	rec = do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestMetricsRoute(t *testing.T) {
	h := newTestServer(t, nil)

	do(t, h, http.MethodGet, "/api/integers/42", "")
	do(t, h, http.MethodPost, "/api/integers/parse", `{"text":"one hured"}`)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `numwords_conversions_total{operation="format_integer",status="ok"} 1`)
	assert.Contains(t, body, `numwords_conversions_total{operation="parse_integer",status="PARSE_002"} 1`)
	assert.Contains(t, body, `route="/api/integers/{value:-?[0-9]+}"`)

	disabled := newTestServer(t, func(c *Config) { c.Features.MetricsEnabled = false })
	assert.Equal(t, http.StatusNotFound, do(t, disabled, http.MethodGet, "/metrics", "").Code)
}

func TestRateLimit(t *testing.T) {
	h := newTestServer(t, func(c *Config) {
		c.RateLimit.RequestsPerSecond = 1
		c.RateLimit.Burst = 2
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, do(t, h, http.MethodGet, "/health", "").Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, handlers.CodeRateLimited, decode[handlers.ErrorResponse](t, rec).Code)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodOptions, "/api/integers/parse", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewServerRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit.Burst = 0
	_, err := NewServer(cfg, numwords.New(nil))
	assert.Error(t, err)

	_, err = NewServer(DefaultConfig(), nil)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.RateLimit.TrustedProxies = []string{"proxy.local"}
	_, err = NewServer(cfg, numwords.New(nil))
	assert.ErrorContains(t, err, "trusted proxy")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"server":{"port":9000},"features":{"correct_enabled":false}}`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.False(t, cfg.Features.CorrectEnabled)
	assert.Equal(t, 20, cfg.RateLimit.RequestsPerSecond)

	require.NoError(t, os.WriteFile(path, []byte(`{"server":`), 0o600))
	_, err = LoadConfig(path)
	assert.True(t, err != nil && strings.Contains(err.Error(), "web.json"))
}
