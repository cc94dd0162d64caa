package db

import (
	"database/sql"
	"time"

	"github.com/t288matt/vatsim-interactions/types"
)

// ReplaceSessions replaces every session whose start falls inside the
// analysis window with the freshly aggregated set, in one transaction.
// Re-running a window therefore never duplicates sessions, and a
// provisional (open) session from the previous run is superseded by the
// extended one.
func ReplaceSessions(windowStart, windowEnd time.Time, sessions []types.InteractionSession) error {
	tx, err := DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		DELETE FROM interaction_sessions
		WHERE start_time BETWEEN $1 AND $2
	`, windowStart, windowEnd)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO interaction_sessions (
			controller_callsign, flight_callsign, frequency_mhz,
			start_time, end_time, sample_count,
			min_distance_nm, max_distance_nm, open
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range sessions {
		_, err = stmt.Exec(s.ControllerCallsign, s.FlightCallsign, s.FrequencyMHz,
			s.StartTime, s.EndTime, s.SampleCount,
			s.MinDistanceNM, s.MaxDistanceNM, s.Open)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RecentSessions returns the most recently started sessions.
func RecentSessions(limit int) ([]types.InteractionSession, error) {
	rows, err := DB.Query(`
		SELECT controller_callsign, flight_callsign, frequency_mhz,
		       start_time, end_time, sample_count,
		       min_distance_nm, max_distance_nm, open
		FROM interaction_sessions
		ORDER BY start_time DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// SessionsForCallsign returns sessions where the callsign appears in the
// given role ("controller" or "flight").
func SessionsForCallsign(callsign, role string, limit int) ([]types.InteractionSession, error) {
	column := "controller_callsign"
	if role == "flight" {
		column = "flight_callsign"
	}

	rows, err := DB.Query(`
		SELECT controller_callsign, flight_callsign, frequency_mhz,
		       start_time, end_time, sample_count,
		       min_distance_nm, max_distance_nm, open
		FROM interaction_sessions
		WHERE `+column+` = $1
		ORDER BY start_time DESC
		LIMIT $2
	`, callsign, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]types.InteractionSession, error) {
	var sessions []types.InteractionSession
	for rows.Next() {
		var s types.InteractionSession
		err := rows.Scan(&s.ControllerCallsign, &s.FlightCallsign, &s.FrequencyMHz,
			&s.StartTime, &s.EndTime, &s.SampleCount,
			&s.MinDistanceNM, &s.MaxDistanceNM, &s.Open)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
