package db

import (
	"fmt"
	"time"

	"github.com/t288matt/vatsim-interactions/types"
)

// StoreSamples inserts a batch of transceiver samples in one transaction.
func StoreSamples(samples []types.TransceiverSample) error {
	if len(samples) == 0 {
		return nil
	}

	tx, err := DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO transceiver_samples (
			entity_type, callsign, frequency_hz,
			timestamp, latitude, longitude
		) VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range samples {
		_, err = stmt.Exec(int(s.EntityType), s.Callsign, s.FrequencyHz,
			s.Timestamp, s.Latitude, s.Longitude)
		if err != nil {
			return fmt.Errorf("error storing sample for %s: %v", s.Callsign, err)
		}
	}

	return tx.Commit()
}

// SamplesBetween loads every sample in [start, end], split into
// controller-origin and flight-origin collections.
func SamplesBetween(start, end time.Time) (controllers, flights []types.TransceiverSample, err error) {
	rows, err := DB.Query(`
		SELECT entity_type, callsign, frequency_hz, timestamp, latitude, longitude
		FROM transceiver_samples
		WHERE timestamp BETWEEN $1 AND $2
		ORDER BY timestamp, callsign
	`, start, end)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s types.TransceiverSample
		var entityType int
		err = rows.Scan(&entityType, &s.Callsign, &s.FrequencyHz,
			&s.Timestamp, &s.Latitude, &s.Longitude)
		if err != nil {
			return nil, nil, err
		}
		s.EntityType = types.EntityType(entityType)

		switch s.EntityType {
		case types.EntityController:
			controllers = append(controllers, s)
		case types.EntityFlight:
			flights = append(flights, s)
		}
	}

	return controllers, flights, rows.Err()
}
