package matching

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/t288matt/vatsim-interactions/geo"
	"github.com/t288matt/vatsim-interactions/types"
)

var baseTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

const (
	adlLat = -34.952425
	adlLon = 138.53208
	sydLat = -33.939316
	sydLon = 151.164666
	cbrLat = -35.306184
	cbrLon = 149.191342
)

func controllerSample(callsign string, freqHz int64, at time.Time, lat, lon float64) types.TransceiverSample {
	return types.TransceiverSample{
		EntityType:  types.EntityController,
		Callsign:    callsign,
		FrequencyHz: freqHz,
		Timestamp:   at,
		Latitude:    lat,
		Longitude:   lon,
	}
}

func flightSample(callsign string, freqHz int64, at time.Time, lat, lon float64) types.TransceiverSample {
	return types.TransceiverSample{
		EntityType:  types.EntityFlight,
		Callsign:    callsign,
		FrequencyHz: freqHz,
		Timestamp:   at,
		Latitude:    lat,
		Longitude:   lon,
	}
}

func TestNormalizeFrequency(t *testing.T) {
	if got := NormalizeFrequency(124700000); got != 124.7 {
		t.Errorf("expected 124.7, got %v", got)
	}
	if got := NormalizeFrequency(118325000); got != 118.325 {
		t.Errorf("expected 118.325, got %v", got)
	}
}

func TestWithinWindow(t *testing.T) {
	if !WithinWindow(baseTime, baseTime, 0) {
		t.Error("equal timestamps must pass a zero window")
	}
	if !WithinWindow(baseTime, baseTime.Add(30*time.Second), 30) {
		t.Error("diff exactly at the window must pass")
	}
	if WithinWindow(baseTime, baseTime.Add(31*time.Second), 30) {
		t.Error("diff one second past the window must fail")
	}
	if !WithinWindow(baseTime.Add(10*time.Second), baseTime, 30) {
		t.Error("window must be symmetric in argument order")
	}
}

func TestMatch_SameCoordinatesWithinRange(t *testing.T) {
	cfg := DefaultConfig()
	ctrl := controllerSample("AD_APP", 124700000, baseTime, adlLat, adlLon)
	flt := flightSample("QFA123", 124700000, baseTime, adlLat, adlLon)

	matches, err := Match([]types.TransceiverSample{ctrl}, []types.TransceiverSample{flt}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.DistanceNM != 0.0 {
		t.Errorf("expected distance exactly 0.0, got %v", m.DistanceNM)
	}
	if m.FrequencyMHz != 124.7 {
		t.Errorf("expected 124.7 MHz, got %v", m.FrequencyMHz)
	}
	if m.TimeDiffSeconds != 0 {
		t.Errorf("expected zero time diff, got %v", m.TimeDiffSeconds)
	}
}

func TestMatch_OutOfRange(t *testing.T) {
	cfg := DefaultConfig() // 300 nm threshold

	// Adelaide to Sydney is ~628 nm, Adelaide to Canberra ~523.6 nm;
	// both beyond the 300 nm threshold.
	for _, dest := range [][2]float64{{sydLat, sydLon}, {cbrLat, cbrLon}} {
		ctrl := controllerSample("AD_APP", 124700000, baseTime, adlLat, adlLon)
		flt := flightSample("QFA123", 124700000, baseTime, dest[0], dest[1])
		matches, err := Match([]types.TransceiverSample{ctrl}, []types.TransceiverSample{flt}, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 0 {
			t.Errorf("expected no match at %v nm, got %d",
				geo.DistanceNM(adlLat, adlLon, dest[0], dest[1]), len(matches))
		}
	}
}

func TestMatch_ThresholdBoundary(t *testing.T) {
	ctrl := controllerSample("AD_APP", 124700000, baseTime, adlLat, adlLon)
	flt := flightSample("QFA123", 124700000, baseTime, sydLat, sydLon)
	exact := geo.DistanceNM(adlLat, adlLon, sydLat, sydLon)

	cfg := DefaultConfig()
	cfg.ProximityThresholdNM = exact
	matches, err := Match([]types.TransceiverSample{ctrl}, []types.TransceiverSample{flt}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("pair exactly at the threshold must match, got %d matches", len(matches))
	}

	cfg.ProximityThresholdNM = math.Nextafter(exact, 0)
	matches, err = Match([]types.TransceiverSample{ctrl}, []types.TransceiverSample{flt}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("pair past the threshold must not match, got %d matches", len(matches))
	}
}

func TestMatch_WindowBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeWindowSeconds = 30

	ctrl := controllerSample("AD_APP", 124700000, baseTime, adlLat, adlLon)
	atWindow := flightSample("QFA1", 124700000, baseTime.Add(30*time.Second), adlLat, adlLon)
	pastWindow := flightSample("QFA2", 124700000, baseTime.Add(31*time.Second), adlLat, adlLon)

	matches, err := Match(
		[]types.TransceiverSample{ctrl},
		[]types.TransceiverSample{atWindow, pastWindow}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].FlightCallsign != "QFA1" {
		t.Errorf("expected QFA1 to match, got %s", matches[0].FlightCallsign)
	}
	if matches[0].TimeDiffSeconds != 30 {
		t.Errorf("expected 30s diff, got %v", matches[0].TimeDiffSeconds)
	}
}

func TestMatch_NoCrossFrequencyMatches(t *testing.T) {
	cfg := DefaultConfig()
	ctrl := controllerSample("AD_APP", 124700000, baseTime, adlLat, adlLon)
	flt := flightSample("QFA123", 124705000, baseTime, adlLat, adlLon)

	matches, err := Match([]types.TransceiverSample{ctrl}, []types.TransceiverSample{flt}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("different frequencies must never match, got %d matches", len(matches))
	}
}

func TestMatch_EmptyInputs(t *testing.T) {
	cfg := DefaultConfig()
	flt := flightSample("QFA123", 124700000, baseTime, adlLat, adlLon)

	matches, err := Match(nil, []types.TransceiverSample{flt}, cfg)
	if err != nil {
		t.Fatalf("empty controller set must not error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected 0 matches, got %d", len(matches))
	}

	ctrl := controllerSample("AD_APP", 124700000, baseTime, adlLat, adlLon)
	matches, err = Match([]types.TransceiverSample{ctrl}, nil, cfg)
	if err != nil {
		t.Fatalf("empty flight set must not error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected 0 matches, got %d", len(matches))
	}
}

func TestMatch_InvalidSample(t *testing.T) {
	cfg := DefaultConfig()
	ctrl := controllerSample("AD_APP", 124700000, baseTime, adlLat, adlLon)
	bad := flightSample("QFA123", 124700000, baseTime, 91.0, adlLon)

	_, err := Match([]types.TransceiverSample{ctrl}, []types.TransceiverSample{bad}, cfg)
	var ise *InvalidSampleError
	if !errors.As(err, &ise) {
		t.Fatalf("expected InvalidSampleError, got %v", err)
	}
	if ise.Sample.Callsign != "QFA123" {
		t.Errorf("error must identify the offending sample, got %q", ise.Sample.Callsign)
	}

	badFreq := flightSample("QFA124", 0, baseTime, adlLat, adlLon)
	_, err = Match([]types.TransceiverSample{ctrl}, []types.TransceiverSample{badFreq}, cfg)
	if !errors.As(err, &ise) {
		t.Fatalf("expected InvalidSampleError for zero frequency, got %v", err)
	}
}

func TestMatch_Ordering(t *testing.T) {
	cfg := DefaultConfig()
	ctrls := []types.TransceiverSample{
		controllerSample("AD_APP", 124700000, baseTime.Add(10*time.Second), adlLat, adlLon),
		controllerSample("AD_TWR", 124700000, baseTime, adlLat, adlLon),
	}
	flights := []types.TransceiverSample{
		flightSample("QFA2", 124700000, baseTime.Add(20*time.Second), adlLat, adlLon),
		flightSample("QFA1", 124700000, baseTime, adlLat, adlLon),
	}

	matches, err := Match(ctrls, flights, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 4 {
		t.Fatalf("expected 4 matches, got %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		if cur.FlightTime.Before(prev.FlightTime) {
			t.Fatalf("matches not ordered by flight time at %d", i)
		}
		if cur.FlightTime.Equal(prev.FlightTime) && cur.ControllerTime.Before(prev.ControllerTime) {
			t.Fatalf("ties not broken by controller time at %d", i)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []Config{
		{ProximityThresholdNM: 0, TimeWindowSeconds: 30, GapToleranceSeconds: 300},
		{ProximityThresholdNM: -1, TimeWindowSeconds: 30, GapToleranceSeconds: 300},
		{ProximityThresholdNM: 300, TimeWindowSeconds: 0, GapToleranceSeconds: 300},
		{ProximityThresholdNM: 300, TimeWindowSeconds: 30, GapToleranceSeconds: -5},
	}
	for i, cfg := range cases {
		err := cfg.Validate()
		var ce *ConfigurationError
		if !errors.As(err, &ce) {
			t.Errorf("case %d: expected ConfigurationError, got %v", i, err)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestMatch_DeterministicForIdenticalInput(t *testing.T) {
	cfg := DefaultConfig()
	ctrls := []types.TransceiverSample{
		controllerSample("AD_APP", 124700000, baseTime, adlLat, adlLon),
		controllerSample("ML_CTR", 128200000, baseTime.Add(5*time.Second), cbrLat, cbrLon),
	}
	flights := []types.TransceiverSample{
		flightSample("QFA1", 124700000, baseTime.Add(2*time.Second), adlLat+0.5, adlLon+0.5),
		flightSample("VOZ2", 128200000, baseTime.Add(8*time.Second), cbrLat-0.3, cbrLon+0.1),
	}

	first, err := Match(ctrls, flights, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Match(ctrls, flights, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("non-deterministic match count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("match %d differs between identical runs", i)
		}
	}
}
