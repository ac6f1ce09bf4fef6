package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/numwords/internal/config"
	"github.com/numwords/internal/lexicon"
	"github.com/numwords/internal/numwords"
	"github.com/numwords/internal/web"
)

func main() {
	configFile := flag.String("config", "", "JSON config file (overrides environment settings)")
	flag.Parse()

	// Load environment configuration
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	fmt.Println("=== Number Words Web API ===")

	webConfig := web.FromSettings(config.Load())
	if *configFile != "" {
		var err error
		webConfig, err = web.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	lex, source, err := lexicon.Resolve(ctx, webConfig.Lexicon.File, webConfig.Lexicon.DSN)
	cancel()
	if err != nil {
		log.Fatalf("Failed to load lexicon: %v", err)
	}

	stats := lex.Stats()
	fmt.Printf("Lexicon: %s (%d words, largest scale %d)\n", source, stats.Words, stats.MaxScale)

	server, err := web.NewServer(webConfig, numwords.New(lex))
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	fmt.Println("\nFeatures enabled:")
	fmt.Printf("  • Correct: %v\n", webConfig.Features.CorrectEnabled)
	fmt.Printf("  • Metrics: %v\n", webConfig.Features.MetricsEnabled)
	fmt.Printf("  • Rate limit: %d/s (burst %d)\n",
		webConfig.RateLimit.RequestsPerSecond, webConfig.RateLimit.Burst)
	fmt.Println()

	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
