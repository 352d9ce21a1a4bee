// Package main is the entry point for the room planner.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/roomplanner/internal/editor"
	"github.com/samdwyer/roomplanner/internal/telemetry"
)

func main() {
	// Load .env for local development (HONEYCOMB_ROOMPLANNER_*, ROOMPLANNER_*).
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, telemetry.ConfigFromEnv())
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Planner will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := editor.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	e, err := editor.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize editor: %v", err)
	}

	if err := e.Run(ctx); err != nil {
		log.Fatalf("Editor error: %v", err)
	}
}
