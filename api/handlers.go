package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/t288matt/vatsim-interactions/db"
)

const (
	defaultSessionLimit = 50
	maxSessionLimit     = 500
)

// GetRecentSessions returns the most recently started interaction
// sessions across the whole network.
func GetRecentSessions(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r)

	sessions, err := db.RecentSessions(limit)
	if err != nil {
		log.Printf("Error querying recent sessions: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SessionsResponse{Sessions: sessions, Total: len(sessions)})
}

// GetCallsignSessions returns interaction sessions for one callsign,
// in the controller role by default or the flight role via ?role=flight.
func GetCallsignSessions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	callsign := strings.ToUpper(vars["callsign"])

	role := strings.ToLower(r.URL.Query().Get("role"))
	if role == "" {
		role = "controller"
	}
	if role != "controller" && role != "flight" {
		http.Error(w, "Invalid role. Must be 'controller' or 'flight'", http.StatusBadRequest)
		return
	}

	sessions, err := db.SessionsForCallsign(callsign, role, parseLimit(r))
	if err != nil {
		log.Printf("Error querying sessions for %s: %v", callsign, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SessionsResponse{Sessions: sessions, Total: len(sessions)})
}

// GetCollectorStats returns the collection loop counters.
func GetCollectorStats(collector Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(collector.GetStats())
	}
}

// GetAnalyzerStats returns the analysis loop counters.
func GetAnalyzerStats(analyzer Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(analyzer.GetStats())
	}
}

// GetServiceStatus returns both loops' counters in one payload.
func GetServiceStatus(collector Collector, analyzer Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := ServiceStatus{
			Timestamp: time.Now().UTC(),
			Collector: collector.GetStats(),
			Analyzer:  analyzer.GetStats(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

func parseLimit(r *http.Request) int {
	limit := defaultSessionLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxSessionLimit {
		limit = maxSessionLimit
	}
	return limit
}
