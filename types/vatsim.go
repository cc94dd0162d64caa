package types

import "time"

// VatsimData is the subset of the VATSIM v3 data feed the service needs
// to classify transceiver callsigns as controller or flight.
type VatsimData struct {
	General     General      `json:"general"`
	Pilots      []Pilot      `json:"pilots"`
	Controllers []Controller `json:"controllers"`
}

type General struct {
	Version          int       `json:"version"`
	Update           string    `json:"update"`
	UpdateTimestamp  time.Time `json:"update_timestamp"`
	ConnectedClients int       `json:"connected_clients"`
	UniqueUsers      int       `json:"unique_users"`
}

type Pilot struct {
	CID         int       `json:"cid"`
	Name        string    `json:"name"`
	Callsign    string    `json:"callsign"`
	Server      string    `json:"server"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Altitude    int       `json:"altitude"`
	Groundspeed int       `json:"groundspeed"`
	LogonTime   time.Time `json:"logon_time"`
	LastUpdated time.Time `json:"last_updated"`
}

type Controller struct {
	CID         int       `json:"cid"`
	Name        string    `json:"name"`
	Callsign    string    `json:"callsign"`
	Frequency   string    `json:"frequency"`
	Facility    int       `json:"facility"`
	Rating      int       `json:"rating"`
	Server      string    `json:"server"`
	VisualRange int       `json:"visual_range"`
	TextAtis    []string  `json:"text_atis"`
	LastUpdated time.Time `json:"last_updated"`
	LogonTime   time.Time `json:"logon_time"`
}

// TransceiverEntry is one client's entry in the VATSIM v3 transceivers
// feed: a callsign with the radios it currently has tuned.
type TransceiverEntry struct {
	Callsign     string        `json:"callsign"`
	Transceivers []Transceiver `json:"transceivers"`
}

type Transceiver struct {
	ID          int     `json:"id"`
	FrequencyHz int64   `json:"frequency"`
	LatDeg      float64 `json:"latDeg"`
	LonDeg      float64 `json:"lonDeg"`
	HeightMslM  float64 `json:"heightMslM"`
	HeightAglM  float64 `json:"heightAglM"`
}
