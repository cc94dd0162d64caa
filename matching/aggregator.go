package matching

import (
	"math"
	"sort"
	"time"

	"github.com/t288matt/vatsim-interactions/types"
)

type sessionKey struct {
	controller  string
	flight      string
	frequencyHz int64
}

// Aggregate folds an ordered sequence of matches (as produced by Match)
// into contact sessions, one scan per (controller, flight, frequency)
// group. A match within GapToleranceSeconds of the current session's end
// extends it; a larger gap closes the session and starts a new one.
// Sessions whose last contact is within the gap tolerance of windowEnd
// are reported as still open.
//
// Session times are flight sample times, the matcher's primary ordering
// key, so folding is deterministic for identical input.
func Aggregate(matches []types.InteractionMatch, windowEnd time.Time, cfg Config) ([]types.InteractionSession, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	open := make(map[sessionKey]*types.InteractionSession)
	var sessions []types.InteractionSession

	for _, m := range matches {
		key := sessionKey{
			controller:  m.ControllerCallsign,
			flight:      m.FlightCallsign,
			frequencyHz: int64(math.Round(m.FrequencyMHz * hzPerMHz)),
		}

		cur, ok := open[key]
		if ok && m.FlightTime.Sub(cur.EndTime).Seconds() > cfg.GapToleranceSeconds {
			sessions = append(sessions, *cur)
			ok = false
		}
		if !ok {
			open[key] = &types.InteractionSession{
				ControllerCallsign: m.ControllerCallsign,
				FlightCallsign:     m.FlightCallsign,
				FrequencyMHz:       m.FrequencyMHz,
				StartTime:          m.FlightTime,
				EndTime:            m.FlightTime,
				SampleCount:        1,
				MinDistanceNM:      m.DistanceNM,
				MaxDistanceNM:      m.DistanceNM,
			}
			continue
		}

		if m.FlightTime.After(cur.EndTime) {
			cur.EndTime = m.FlightTime
		}
		cur.SampleCount++
		if m.DistanceNM < cur.MinDistanceNM {
			cur.MinDistanceNM = m.DistanceNM
		}
		if m.DistanceNM > cur.MaxDistanceNM {
			cur.MaxDistanceNM = m.DistanceNM
		}
	}

	// Sessions still within the gap tolerance of the window boundary may
	// continue into the next window.
	for _, cur := range open {
		if windowEnd.Sub(cur.EndTime).Seconds() <= cfg.GapToleranceSeconds {
			cur.Open = true
		}
		sessions = append(sessions, *cur)
	}

	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].StartTime.Equal(sessions[j].StartTime) {
			return sessions[i].StartTime.Before(sessions[j].StartTime)
		}
		if sessions[i].ControllerCallsign != sessions[j].ControllerCallsign {
			return sessions[i].ControllerCallsign < sessions[j].ControllerCallsign
		}
		return sessions[i].FlightCallsign < sessions[j].FlightCallsign
	})

	return sessions, nil
}
