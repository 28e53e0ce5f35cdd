package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/daehantax/fund-match/internal/ai"
	"github.com/daehantax/fund-match/internal/api"
	"github.com/daehantax/fund-match/internal/ingest"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found, relying on process environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	ctx := context.Background()

	registry, err := ingest.LoadRegistry("")
	if err != nil {
		log.Fatalf("Failed to load source registry: %v", err)
	}

	loader := ingest.NewLoader(registry, nil)

	// Warm both caches up front so the first request does not pay the fetch.
	if grants, err := loader.LoadGrants(ctx); err == nil {
		log.Printf("Warmed grant cache: %d postings", len(grants))
	}
	if clients, err := loader.LoadClients(ctx); err == nil {
		log.Printf("Warmed client cache: %d records", len(clients))
	}

	aiClient, err := ai.NewClient(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize AI client: %v", err)
	}

	srv := api.NewServer(loader, aiClient)
	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}
