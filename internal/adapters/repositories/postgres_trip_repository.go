package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
)

// Postgres-backed implementation of the TripRepository port.
type PostgresTripRepository struct{ DB *sql.DB }

func NewPostgresTripRepository(db *sql.DB) *PostgresTripRepository {
	return &PostgresTripRepository{DB: db}
}

// CreateTrip inserts a trip and returns its generated ID.
func (r *PostgresTripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) (int64, error) {
	if r.DB == nil {
		return 0, errors.New("trip repository: DB is nil")
	}

	query := `
	INSERT INTO trips (title, start_name, start_lat, start_lon, start_date, start_time, end_time, num_days, available_hours)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING trip_id;
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		trip.Title, trip.StartName,
		trip.Start.Lat, trip.Start.Lon,
		trip.StartDate,
		trip.StartTime.String(), trip.EndTime.String(),
		trip.NumDays, trip.AvailableHoursPerDay,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create trip: insert: %w", err)
	}

	return id, nil
}

func scanTrip(row interface{ Scan(...any) error }) (*domain.Trip, error) {
	var t domain.Trip
	var startTime, endTime string

	err := row.Scan(
		&t.ID, &t.Title, &t.StartName,
		&t.Start.Lat, &t.Start.Lon,
		&t.StartDate, &startTime, &endTime,
		&t.NumDays, &t.AvailableHoursPerDay, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if t.StartTime, err = domain.ParseTimeOfDay(startTime); err != nil {
		return nil, fmt.Errorf("stored start_time: %w", err)
	}
	if t.EndTime, err = domain.ParseTimeOfDay(endTime); err != nil {
		return nil, fmt.Errorf("stored end_time: %w", err)
	}

	return &t, nil
}

const tripColumns = `
	trip_id,
	title,
	start_name,
	start_lat,
	start_lon,
	start_date,
	start_time,
	end_time,
	num_days,
	available_hours,
	created_at
`

// GetTrip returns a trip by ID.
func (r *PostgresTripRepository) GetTrip(ctx context.Context, id int64) (*domain.Trip, error) {
	if r.DB == nil {
		return nil, errors.New("trip repository: DB is nil")
	}

	query := `SELECT ` + tripColumns + ` FROM trips WHERE trip_id = $1;`

	t, err := scanTrip(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get trip %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %d: %w", id, err)
	}

	return t, nil
}

// ListTrips returns all trips, newest first.
func (r *PostgresTripRepository) ListTrips(ctx context.Context) ([]*domain.Trip, error) {
	if r.DB == nil {
		return nil, errors.New("trip repository: DB is nil")
	}

	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at DESC;`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0, 16)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("list trips: scan row: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}

// AddStop attaches a catalog location to the trip's selection. Adding the
// same location twice is a no-op.
func (r *PostgresTripRepository) AddStop(ctx context.Context, tripID, locationID int64) error {
	if r.DB == nil {
		return errors.New("trip repository: DB is nil")
	}

	query := `
	INSERT INTO trip_stops (trip_id, location_id)
	VALUES ($1, $2)
	ON CONFLICT (trip_id, location_id) DO NOTHING;
	`

	if _, err := r.DB.ExecContext(ctx, query, tripID, locationID); err != nil {
		return fmt.Errorf("add stop: trip=%d location=%d: %w", tripID, locationID, err)
	}

	return nil
}

// RemoveStop detaches a location from the trip's selection.
func (r *PostgresTripRepository) RemoveStop(ctx context.Context, tripID, locationID int64) error {
	if r.DB == nil {
		return errors.New("trip repository: DB is nil")
	}

	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM trip_stops WHERE trip_id = $1 AND location_id = $2;`,
		tripID, locationID,
	)
	if err != nil {
		return fmt.Errorf("remove stop: trip=%d location=%d: %w", tripID, locationID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove stop: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("remove stop: trip=%d location=%d: %w", tripID, locationID, domain.ErrNotFound)
	}

	return nil
}

// ListStops returns the trip's selected stops in the order they were added.
func (r *PostgresTripRepository) ListStops(ctx context.Context, tripID int64) ([]domain.Stop, error) {
	if r.DB == nil {
		return nil, errors.New("trip repository: DB is nil")
	}

	query := `
	SELECT
		l.location_id,
		l.kind,
		l.name,
		l.lat,
		l.lon,
		l.visit_minutes,
		l.description,
		l.image_url,
		l.service_category
	FROM trip_stops ts
	JOIN locations l ON l.location_id = ts.location_id
	WHERE ts.trip_id = $1
	ORDER BY ts.added_at, l.location_id;
	`

	rows, err := r.DB.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("list stops: query trip_stops: %w", err)
	}
	defer rows.Close()

	stops := make([]domain.Stop, 0, 16)
	for rows.Next() {
		s, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("list stops: scan row: %w", err)
		}
		stops = append(stops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stops: row iteration: %w", err)
	}

	return stops, nil
}
