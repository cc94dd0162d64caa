package types

import "time"

type CollectionStats struct {
	LastUpdate         time.Time `json:"last_update"`
	TotalSnapshots     int64     `json:"total_snapshots"`
	SamplesStored      int64     `json:"samples_stored"`
	ControllerSamples  int64     `json:"controller_samples"`
	FlightSamples      int64     `json:"flight_samples"`
	UnclassifiedRadios int64     `json:"unclassified_radios"`
	StartTime          time.Time `json:"start_time"`
}

type AnalysisStats struct {
	LastRun         time.Time `json:"last_run"`
	TotalRuns       int64     `json:"total_runs"`
	LastWindowStart time.Time `json:"last_window_start"`
	LastWindowEnd   time.Time `json:"last_window_end"`
	SamplesAnalyzed int64     `json:"samples_analyzed"`
	MatchesFound    int64     `json:"matches_found"`
	SessionsStored  int64     `json:"sessions_stored"`
	FailedRuns      int64     `json:"failed_runs"`
	StartTime       time.Time `json:"start_time"`
}
