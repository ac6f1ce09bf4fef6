package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings holds the values the CLI and web server read from the environment.
type Settings struct {
	LexiconFile string
	LexiconDSN  string
	Precision   uint8
	Debug       bool

	WebHost   string
	WebPort   int
	RateLimit int
	RateBurst int
	// TrustedProxies may set X-Forwarded-For / X-Real-IP.
	TrustedProxies []string
	EnableCorrect  bool
	EnableMetrics  bool
}

// LoadEnv loads variables from the first .env file found in the current
// directory or its two parents. Variables already set are not overridden.
func LoadEnv() error {
	envPaths := []string{".env", "../.env", "../../.env"}

	for _, envPath := range envPaths {
		err := godotenv.Load(envPath)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Load reads Settings, applying defaults for unset or malformed values.
func Load() Settings {
	precision := GetEnvInt("NUMWORDS_PRECISION", 2)
	if precision < 0 || precision > 255 {
		precision = 2
	}

	return Settings{
		LexiconFile: GetEnv("NUMWORDS_LEXICON_FILE", ""),
		LexiconDSN:  GetEnv("NUMWORDS_LEXICON_DSN", ""),
		Precision:   uint8(precision),
		Debug:       GetEnvBool("NUMWORDS_DEBUG", false),

		WebHost:        GetEnv("WEB_HOST", "localhost"),
		WebPort:        GetEnvInt("WEB_PORT", 8080),
		RateLimit:      GetEnvInt("WEB_RATE_LIMIT", 20),
		RateBurst:      GetEnvInt("WEB_RATE_BURST", 40),
		TrustedProxies: GetEnvList("WEB_TRUSTED_PROXIES"),
		EnableCorrect:  GetEnvBool("WEB_ENABLE_CORRECT", true),
		EnableMetrics:  GetEnvBool("WEB_ENABLE_METRICS", true),
	}
}

// GetEnv gets environment variable with default
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets integer environment variable with default
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvList splits a comma-separated variable, dropping empty items. It
// returns nil when the variable is unset.
func GetEnvList(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// GetEnvBool gets boolean environment variable with default
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}
