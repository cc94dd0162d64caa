package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/t288matt/vatsim-interactions/analyzer"
	"github.com/t288matt/vatsim-interactions/api"
	"github.com/t288matt/vatsim-interactions/collector"
	"github.com/t288matt/vatsim-interactions/db"
	"github.com/t288matt/vatsim-interactions/matching"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Initialize database connection
	if err := db.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	updateInterval := envSeconds("UPDATE_INTERVAL", 15)
	analysisInterval := envSeconds("ANALYSIS_INTERVAL", 60)
	analysisOverlap := envSeconds("ANALYSIS_OVERLAP_SECONDS", 600)

	// Matching thresholds fail fast on misconfiguration
	cfg := matching.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid matching configuration: %v", err)
	}

	c := collector.NewCollector()
	a, err := analyzer.NewAnalyzer(cfg, analysisOverlap)
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}

	// Set up API routes
	router := api.NewRouter(c, a)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the API server in a goroutine
	go func() {
		log.Printf("Starting API server on :%s", port)
		if err := http.ListenAndServe(":"+port, router); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	// Analysis loop
	go func() {
		analysisTicker := time.NewTicker(analysisInterval)
		defer analysisTicker.Stop()
		for range analysisTicker.C {
			if err := a.Run(); err != nil {
				log.Printf("Error running analysis: %v", err)
			}
		}
	}()

	log.Printf("Starting VATSIM interaction collector (update interval: %v, analysis interval: %v, threshold: %.0f nm)",
		updateInterval, analysisInterval, cfg.ProximityThresholdNM)

	// Initial collection
	if err := c.FetchAndStore(); err != nil {
		log.Printf("Error collecting data: %v", err)
	}

	// Continuous collection
	ticker := time.NewTicker(updateInterval)
	defer ticker.Stop()
	for range ticker.C {
		if err := c.FetchAndStore(); err != nil {
			log.Printf("Error collecting data: %v", err)
		}
	}
}

func envSeconds(name string, def int) time.Duration {
	seconds := def
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			seconds = v
		}
	}
	return time.Duration(seconds) * time.Second
}
