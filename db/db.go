package db

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitDB() error {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
	)

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("error opening database: %v", err)
	}

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("error connecting to the database: %v", err)
	}

	if err = createTables(); err != nil {
		return fmt.Errorf("error creating tables: %v", err)
	}

	return nil
}

func createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS api_keys (
			id SERIAL PRIMARY KEY,
			key VARCHAR(64) NOT NULL UNIQUE,
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			last_used_at TIMESTAMP WITH TIME ZONE,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS transceiver_samples (
			id BIGSERIAL PRIMARY KEY,
			entity_type SMALLINT NOT NULL,
			callsign VARCHAR(255) NOT NULL,
			frequency_hz BIGINT NOT NULL,
			timestamp TIMESTAMP WITH TIME ZONE NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS interaction_sessions (
			id BIGSERIAL PRIMARY KEY,
			controller_callsign VARCHAR(255) NOT NULL,
			flight_callsign VARCHAR(255) NOT NULL,
			frequency_mhz DOUBLE PRECISION NOT NULL,
			start_time TIMESTAMP WITH TIME ZONE NOT NULL,
			end_time TIMESTAMP WITH TIME ZONE NOT NULL,
			sample_count INTEGER NOT NULL,
			min_distance_nm DOUBLE PRECISION NOT NULL,
			max_distance_nm DOUBLE PRECISION NOT NULL,
			open BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,

		// Indexes for the windowed analysis query and the API lookups
		`CREATE INDEX IF NOT EXISTS idx_samples_timestamp ON transceiver_samples (timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_samples_entity_type ON transceiver_samples (entity_type)`,
		`CREATE INDEX IF NOT EXISTS idx_samples_callsign ON transceiver_samples (callsign)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_controller ON interaction_sessions (controller_callsign)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_flight ON interaction_sessions (flight_callsign)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_start ON interaction_sessions (start_time DESC)`,
	}

	for _, query := range queries {
		_, err := DB.Exec(query)
		if err != nil {
			return err
		}
	}

	return nil
}

func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
