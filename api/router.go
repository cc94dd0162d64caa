package api

import (
	"github.com/gorilla/mux"
	"github.com/t288matt/vatsim-interactions/types"
)

type Collector interface {
	GetStats() types.CollectionStats
}

type Analyzer interface {
	GetStats() types.AnalysisStats
}

// NewRouter creates and configures a new router with all API endpoints
func NewRouter(collector Collector, analyzer Analyzer) *mux.Router {
	r := mux.NewRouter()

	// API key management endpoints (master-key protected, unthrottled)
	r.HandleFunc("/api/keys", CreateAPIKey).Methods("POST")
	r.HandleFunc("/api/keys", ListAPIKeys).Methods("GET")
	r.HandleFunc("/api/keys", DeleteAPIKey).Methods("DELETE")

	// Apply rate limiting middleware to all other routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(RateLimit)

	// Interaction session endpoints
	api.HandleFunc("/interactions/recent", GetRecentSessions).Methods("GET")
	api.HandleFunc("/interactions/{callsign}/sessions", GetCallsignSessions).Methods("GET")

	// Service status endpoints
	api.HandleFunc("/collector/stats", GetCollectorStats(collector)).Methods("GET")
	api.HandleFunc("/analyzer/stats", GetAnalyzerStats(analyzer)).Methods("GET")
	api.HandleFunc("/status", GetServiceStatus(collector, analyzer)).Methods("GET")

	return r
}
