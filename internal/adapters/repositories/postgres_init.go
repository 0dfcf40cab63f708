package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// InitSchema creates the planner tables when they do not exist yet.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		location_id BIGINT PRIMARY KEY,
		kind TEXT NOT NULL,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		visit_minutes INTEGER NOT NULL DEFAULT 60,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		service_category TEXT NOT NULL DEFAULT ''
	);
	`

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		trip_id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		start_name TEXT NOT NULL,
		start_lat DOUBLE PRECISION NOT NULL,
		start_lon DOUBLE PRECISION NOT NULL,
		start_date DATE NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		num_days INTEGER NOT NULL,
		available_hours INTEGER NOT NULL DEFAULT 8,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createTripStopsQuery := `
	CREATE TABLE IF NOT EXISTS trip_stops (
		trip_id BIGINT NOT NULL REFERENCES trips(trip_id) ON DELETE CASCADE,
		location_id BIGINT NOT NULL REFERENCES locations(location_id) ON DELETE CASCADE,
		added_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (trip_id, location_id)
	);
	`

	createTripDaysQuery := `
	CREATE TABLE IF NOT EXISTS trip_days (
		trip_day_id BIGSERIAL PRIMARY KEY,
		trip_id BIGINT NOT NULL REFERENCES trips(trip_id) ON DELETE CASCADE,
		day_number INTEGER NOT NULL,
		day_date DATE NOT NULL,
		UNIQUE (trip_id, day_number)
	);
	`

	createSegmentsQuery := `
	CREATE TABLE IF NOT EXISTS schedule_segments (
		segment_id BIGSERIAL PRIMARY KEY,
		trip_day_id BIGINT NOT NULL REFERENCES trip_days(trip_day_id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		segment_type TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		distance_km DOUBLE PRECISION,
		label TEXT NOT NULL DEFAULT '',
		location_id BIGINT REFERENCES locations(location_id) ON DELETE SET NULL
	);
	`

	createSegmentIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_schedule_segments_day_position
	ON schedule_segments(trip_day_id, position);
	`

	statements := []string{
		createLocationsQuery,
		createTripsQuery,
		createTripStopsQuery,
		createTripDaysQuery,
		createSegmentsQuery,
		createSegmentIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type LocationSeed struct {
	LocationID      int64   `json:"location_id"`
	Kind            string  `json:"kind"`
	Name            string  `json:"name"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
	VisitMinutes    int     `json:"visit_minutes"`
	Description     string  `json:"description"`
	ImageURL        string  `json:"image_url"`
	ServiceCategory string  `json:"service_category"`
}

// SeedFromJSON loads catalog locations from a JSON file, upserting by ID.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed locations: read %q: %w", jsonPath, err)
	}

	var data []LocationSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed locations: parse json: %w", err)
	}

	for i, item := range data {
		if item.LocationID <= 0 {
			return fmt.Errorf("seed locations: invalid location_id at index %d: %d", i+1, item.LocationID)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed locations: item at index %d: name cannot be empty", i+1)
		}
		if item.Kind != "point-of-interest" && item.Kind != "service-listing" {
			return fmt.Errorf("seed locations: item at index %d: unknown kind %q", i+1, item.Kind)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO locations (location_id, kind, name, lat, lon, visit_minutes, description, image_url, service_category)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (location_id) DO UPDATE
	SET kind = EXCLUDED.kind,
		name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		visit_minutes = EXCLUDED.visit_minutes,
		description = EXCLUDED.description,
		image_url = EXCLUDED.image_url,
		service_category = EXCLUDED.service_category;
	`)
	if err != nil {
		return fmt.Errorf("seed locations: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, item := range data {
		visit := item.VisitMinutes
		if visit <= 0 {
			visit = 60
		}

		_, err := stmt.Exec(
			item.LocationID, item.Kind, strings.TrimSpace(item.Name),
			item.Lat, item.Lon, visit,
			item.Description, item.ImageURL, item.ServiceCategory,
		)
		if err != nil {
			return fmt.Errorf("seed locations: upsert location_id=%d: %w", item.LocationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}
