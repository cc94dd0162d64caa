package matching

import (
	"math"
	"sort"
	"time"

	"github.com/t288matt/vatsim-interactions/geo"
	"github.com/t288matt/vatsim-interactions/types"
)

const hzPerMHz = 1_000_000

// NormalizeFrequency converts a raw integer frequency in Hz to MHz.
// Raw frequencies are integers, so frequency equality is decided on the
// raw Hz value; the MHz form is a derived reporting value only.
func NormalizeFrequency(rawHz int64) float64 {
	return float64(rawHz) / hzPerMHz
}

// WithinWindow reports whether two timestamps fall within windowSeconds
// of each other. Equal timestamps always pass; a zero window requires
// exact equality.
func WithinWindow(t1, t2 time.Time, windowSeconds float64) bool {
	return math.Abs(t1.Sub(t2).Seconds()) <= windowSeconds
}

// Match enumerates every (controller sample, flight sample) pair that is
// on the same frequency, within the configured time window, and within
// the configured proximity threshold. Matches are ordered by flight
// sample time, then controller sample time.
//
// Either input being empty yields an empty result. A sample with
// out-of-range coordinates or a non-positive frequency aborts with an
// *InvalidSampleError.
func Match(controllers, flights []types.TransceiverSample, cfg Config) ([]types.InteractionMatch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateSamples(controllers); err != nil {
		return nil, err
	}
	if err := validateSamples(flights); err != nil {
		return nil, err
	}

	// Bucket by raw frequency so only same-frequency pairs are compared.
	flightsByFreq := make(map[int64][]types.TransceiverSample)
	for _, f := range flights {
		flightsByFreq[f.FrequencyHz] = append(flightsByFreq[f.FrequencyHz], f)
	}

	var matches []types.InteractionMatch
	for _, ctrl := range controllers {
		for _, flt := range flightsByFreq[ctrl.FrequencyHz] {
			// Temporal filter first; distance is the expensive check.
			if !WithinWindow(ctrl.Timestamp, flt.Timestamp, cfg.TimeWindowSeconds) {
				continue
			}
			dist := geo.DistanceNM(ctrl.Latitude, ctrl.Longitude, flt.Latitude, flt.Longitude)
			if dist > cfg.ProximityThresholdNM {
				continue
			}
			matches = append(matches, types.InteractionMatch{
				ControllerCallsign: ctrl.Callsign,
				FlightCallsign:     flt.Callsign,
				FrequencyMHz:       NormalizeFrequency(ctrl.FrequencyHz),
				ControllerTime:     ctrl.Timestamp,
				FlightTime:         flt.Timestamp,
				ControllerLat:      ctrl.Latitude,
				ControllerLon:      ctrl.Longitude,
				FlightLat:          flt.Latitude,
				FlightLon:          flt.Longitude,
				DistanceNM:         dist,
				TimeDiffSeconds:    math.Abs(ctrl.Timestamp.Sub(flt.Timestamp).Seconds()),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].FlightTime.Equal(matches[j].FlightTime) {
			return matches[i].FlightTime.Before(matches[j].FlightTime)
		}
		if !matches[i].ControllerTime.Equal(matches[j].ControllerTime) {
			return matches[i].ControllerTime.Before(matches[j].ControllerTime)
		}
		if matches[i].ControllerCallsign != matches[j].ControllerCallsign {
			return matches[i].ControllerCallsign < matches[j].ControllerCallsign
		}
		return matches[i].FlightCallsign < matches[j].FlightCallsign
	})

	return matches, nil
}

func validateSamples(samples []types.TransceiverSample) error {
	for _, s := range samples {
		if !geo.ValidCoordinates(s.Latitude, s.Longitude) {
			return &InvalidSampleError{Sample: s, Reason: "coordinates out of range"}
		}
		if s.FrequencyHz <= 0 {
			return &InvalidSampleError{Sample: s, Reason: "non-positive frequency"}
		}
	}
	return nil
}
