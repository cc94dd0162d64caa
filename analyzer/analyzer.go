package analyzer

import (
	"fmt"
	"log"
	"time"

	"github.com/t288matt/vatsim-interactions/db"
	"github.com/t288matt/vatsim-interactions/matching"
	"github.com/t288matt/vatsim-interactions/types"
)

// Analyzer runs the interaction matching pipeline over successive time
// windows: load samples, enumerate controller-flight matches, fold them
// into sessions, and persist the result.
type Analyzer struct {
	cfg matching.Config
	// overlap is re-analyzed at the start of each window so sessions
	// left open at the previous boundary can be extended.
	overlap       time.Duration
	lastProcessed time.Time
	stats         types.AnalysisStats
}

func NewAnalyzer(cfg matching.Config, overlap time.Duration) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{
		cfg:     cfg,
		overlap: overlap,
		stats: types.AnalysisStats{
			StartTime: time.Now(),
		},
	}, nil
}

func (a *Analyzer) GetStats() types.AnalysisStats {
	return a.stats
}

// Run analyzes the window from the previous run (minus overlap) to now.
func (a *Analyzer) Run() error {
	windowEnd := time.Now().UTC()
	windowStart := a.lastProcessed.Add(-a.overlap)
	if a.lastProcessed.IsZero() {
		windowStart = windowEnd.Add(-a.overlap)
	}

	sessions, sampleCount, matchCount, err := a.analyzeWindow(windowStart, windowEnd)
	if err != nil {
		a.stats.FailedRuns++
		return err
	}

	if err := db.ReplaceSessions(windowStart, windowEnd, sessions); err != nil {
		a.stats.FailedRuns++
		return fmt.Errorf("error storing sessions: %v", err)
	}

	a.lastProcessed = windowEnd
	a.stats.LastRun = time.Now()
	a.stats.TotalRuns++
	a.stats.LastWindowStart = windowStart
	a.stats.LastWindowEnd = windowEnd
	a.stats.SamplesAnalyzed += int64(sampleCount)
	a.stats.MatchesFound += int64(matchCount)
	a.stats.SessionsStored += int64(len(sessions))

	log.Printf("Analysis run: window %s..%s, %d samples, %d matches, %d sessions",
		windowStart.Format(time.RFC3339), windowEnd.Format(time.RFC3339),
		sampleCount, matchCount, len(sessions))

	return nil
}

func (a *Analyzer) analyzeWindow(windowStart, windowEnd time.Time) ([]types.InteractionSession, int, int, error) {
	controllers, flights, err := db.SamplesBetween(windowStart, windowEnd)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("error loading samples: %v", err)
	}

	matches, err := matching.Match(controllers, flights, a.cfg)
	if err != nil {
		// An InvalidSampleError here means corrupt upstream data; it is
		// surfaced, not skipped.
		return nil, 0, 0, fmt.Errorf("error matching window %s..%s: %v",
			windowStart.Format(time.RFC3339), windowEnd.Format(time.RFC3339), err)
	}

	sessions, err := matching.Aggregate(matches, windowEnd, a.cfg)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("error aggregating sessions: %v", err)
	}

	return sessions, len(controllers) + len(flights), len(matches), nil
}
