package web

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/numwords/internal/config"
)

// Config represents the web server configuration
type Config struct {
	Server    ServerConfig    `json:"server"`
	Lexicon   LexiconConfig   `json:"lexicon"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Features  FeatureConfig   `json:"features"`
	Precision uint8           `json:"precision"`
	Debug     bool            `json:"debug"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port int    `json:"port"`
	Host string `json:"host"`
}

// LexiconConfig selects the lexicon source. Both empty means the built-in
// English tables.
type LexiconConfig struct {
	File string `json:"file"`
	DSN  string `json:"dsn"`
}

// RateLimitConfig is the per-client token bucket. Forwarding headers are
// only read from TrustedProxies (CIDRs or addresses).
type RateLimitConfig struct {
	RequestsPerSecond int      `json:"requests_per_second"`
	Burst             int      `json:"burst"`
	TrustedProxies    []string `json:"trusted_proxies"`
}

// FeatureConfig contains feature toggles
type FeatureConfig struct {
	CorrectEnabled bool `json:"correct_enabled"`
	MetricsEnabled bool `json:"metrics_enabled"`
}

// LoadConfig loads configuration from a JSON file. Fields missing from the
// file keep their DefaultConfig values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	return cfg, nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
		},
		Features: FeatureConfig{
			CorrectEnabled: true,
			MetricsEnabled: true,
		},
		Precision: 2,
	}
}

// FromSettings builds a configuration from environment settings.
func FromSettings(s config.Settings) *Config {
	return &Config{
		Server: ServerConfig{
			Port: s.WebPort,
			Host: s.WebHost,
		},
		Lexicon: LexiconConfig{
			File: s.LexiconFile,
			DSN:  s.LexiconDSN,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: s.RateLimit,
			Burst:             s.RateBurst,
			TrustedProxies:    s.TrustedProxies,
		},
		Features: FeatureConfig{
			CorrectEnabled: s.EnableCorrect,
			MetricsEnabled: s.EnableMetrics,
		},
		Precision: s.Precision,
		Debug:     s.Debug,
	}
}
