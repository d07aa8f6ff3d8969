package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"deal_underwriting/pkg/api/deals"
	"deal_underwriting/pkg/api/underwriting"
	"deal_underwriting/pkg/core/assumption"
	"deal_underwriting/pkg/core/llm"
	"deal_underwriting/pkg/core/narrative"
	"deal_underwriting/pkg/core/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Load assumption rate tables (relative to working directory or executable)
	ratesPath := "config/rates.yaml"
	if _, err := os.Stat(ratesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		ratesPath = filepath.Join(filepath.Dir(exePath), "config", "rates.yaml")
	}
	tables, err := assumption.LoadRateTables(ratesPath)
	if err != nil {
		fmt.Printf("[WARNING] Failed to load rate tables: %v\n", err)
		fmt.Println("  Deals must carry their own tax/insurance/utilities figures")
		tables = nil
	} else {
		fmt.Printf("[CONFIG] Loaded rate tables from %s\n", ratesPath)
	}

	// Database is optional; without it reports are still computed, just not saved.
	var repo *store.DealRepo
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database unavailable: %v\n", err)
		} else {
			repo = store.NewDealRepo()
			defer store.Close()
		}
	} else {
		fmt.Println("[STORE] DATABASE_URL not set, persistence disabled")
	}

	// Report cache: redis when configured, in-process otherwise.
	var cache store.ReportCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = store.NewRedisReportCache(addr, 15*time.Minute)
		fmt.Printf("[CACHE] Using redis at %s\n", addr)
	} else {
		cache = store.NewMemoryReportCache()
		fmt.Println("[CACHE] Using in-memory report cache")
	}

	// Narrative generation needs an LLM provider; without one the service
	// falls back to a deterministic template.
	var narrativeSvc *narrative.Service
	provider, err := llm.NewProvider(os.Getenv("LLM_PROVIDER"))
	if err != nil {
		fmt.Printf("[WARNING] LLM provider unavailable: %v\n", err)
		narrativeSvc = narrative.NewService(nil)
	} else {
		narrativeSvc = narrative.NewService(provider)
	}

	// Underwriting endpoints
	underwritingHandler := underwriting.NewHandler(tables, cache, repo, narrativeSvc)
	http.HandleFunc("/api/underwriting/report", underwritingHandler.HandleReport)

	// Deal CRUD endpoints
	dealsHandler := deals.NewHandler(repo, cache)
	http.HandleFunc("/api/deals", dealsHandler.HandleDeals)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - POST /api/underwriting/report")
	fmt.Println("  - GET  /api/deals?id=<id>")
	fmt.Println("  - POST /api/deals")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
