package api

import (
	"time"

	"github.com/t288matt/vatsim-interactions/types"
)

// SessionsResponse wraps a list of interaction sessions.
type SessionsResponse struct {
	Sessions []types.InteractionSession `json:"sessions"`
	Total    int                        `json:"total"`
}

// ServiceStatus reports both background loops in one payload.
type ServiceStatus struct {
	Timestamp time.Time             `json:"timestamp"`
	Collector types.CollectionStats `json:"collector"`
	Analyzer  types.AnalysisStats   `json:"analyzer"`
}
