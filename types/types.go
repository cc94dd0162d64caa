package types

import "time"

type EntityType int

const (
	EntityController EntityType = 1
	EntityFlight     EntityType = 2
)

func (e EntityType) String() string {
	switch e {
	case EntityController:
		return "controller"
	case EntityFlight:
		return "flight"
	}
	return "unknown"
}

// TransceiverSample is one time-stamped radio transceiver observation for
// a controller or a flight. Samples are immutable once collected.
type TransceiverSample struct {
	EntityType  EntityType `json:"entity_type"`
	Callsign    string     `json:"callsign"`
	FrequencyHz int64      `json:"frequency_hz"`
	Timestamp   time.Time  `json:"timestamp"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
}

// InteractionMatch is a single (controller sample, flight sample) pair
// that satisfied the frequency, time-window and proximity predicates.
type InteractionMatch struct {
	ControllerCallsign string    `json:"controller_callsign"`
	FlightCallsign     string    `json:"flight_callsign"`
	FrequencyMHz       float64   `json:"frequency_mhz"`
	ControllerTime     time.Time `json:"controller_time"`
	FlightTime         time.Time `json:"flight_time"`
	ControllerLat      float64   `json:"controller_lat"`
	ControllerLon      float64   `json:"controller_lon"`
	FlightLat          float64   `json:"flight_lat"`
	FlightLon          float64   `json:"flight_lon"`
	DistanceNM         float64   `json:"distance_nm"`
	TimeDiffSeconds    float64   `json:"time_diff_seconds"`
}

// InteractionSession is a continuous (or near-continuous) contact
// interval between one controller and one flight on one frequency.
type InteractionSession struct {
	ControllerCallsign string    `json:"controller_callsign"`
	FlightCallsign     string    `json:"flight_callsign"`
	FrequencyMHz       float64   `json:"frequency_mhz"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	SampleCount        int       `json:"sample_count"`
	MinDistanceNM      float64   `json:"min_distance_nm"`
	MaxDistanceNM      float64   `json:"max_distance_nm"`
	// Open marks a session still in contact at the analysis window
	// boundary; the next analysis pass may extend or supersede it.
	Open bool `json:"open"`
}
