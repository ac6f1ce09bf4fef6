// Package debug prints timestamped diagnostics through the standard logger
// when a caller-supplied flag is on.
package debug

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// DebugHeader marks the start of a traced conversion.
func DebugHeader(enabled bool) {
	if enabled {
		log.Printf("=== DEBUG START ===")
	}
}

// DebugFooter marks the end of a traced conversion.
func DebugFooter(enabled bool) {
	if enabled {
		log.Printf("=== DEBUG END ===")
	}
}

// DebugOutput prints a formatted line if debugging is enabled
func DebugOutput(enabled bool, format string, args ...interface{}) {
	if !enabled {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	log.Printf("[%s] %s", timestamp, fmt.Sprintf(format, args...))
}

// DebugTiming logs the start of operation and returns a func that logs its
// duration. A no-op func is returned when debugging is off.
func DebugTiming(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	DebugOutput(enabled, "Starting: %s", operation)

	return func() {
		DebugOutput(enabled, "Completed: %s (took %v)", operation, time.Since(start))
	}
}

// DebugTokens logs a token list with each token's position, so a stage that
// drops or splits words shows up against the stage before it:
//
//	Tokens (2): [0]"forty" [1]"two"
func DebugTokens(enabled bool, stage string, tokens []string) {
	if !enabled {
		return
	}
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "[%d]%q", i, tok)
	}
	DebugOutput(enabled, "%s (%d): %s", stage, len(tokens), b.String())
}
