package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
)

// Postgres-backed implementation of the LocationRepository port.
type PostgresLocationRepository struct{ DB *sql.DB }

func NewPostgresLocationRepository(db *sql.DB) *PostgresLocationRepository {
	return &PostgresLocationRepository{DB: db}
}

const locationColumns = `
	location_id,
	kind,
	name,
	lat,
	lon,
	visit_minutes,
	description,
	image_url,
	service_category
`

func scanLocation(row interface{ Scan(...any) error }) (domain.Stop, error) {
	var s domain.Stop
	var kind string
	err := row.Scan(
		&s.ID, &kind, &s.Name,
		&s.Position.Lat, &s.Position.Lon,
		&s.VisitMinutes, &s.Description, &s.ImageURL, &s.ServiceCategory,
	)
	if err != nil {
		return domain.Stop{}, err
	}
	s.Kind = domain.StopKind(kind)
	return s, nil
}

// ListLocations returns the whole catalog ordered by ID.
func (r *PostgresLocationRepository) ListLocations(ctx context.Context) ([]domain.Stop, error) {
	if r.DB == nil {
		return nil, errors.New("location repository: DB is nil")
	}

	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY location_id;`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Stop, 0, 64)
	for rows.Next() {
		s, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		locations = append(locations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return locations, nil
}

// GetLocation returns a single catalog location by ID.
func (r *PostgresLocationRepository) GetLocation(ctx context.Context, id int64) (*domain.Stop, error) {
	if r.DB == nil {
		return nil, errors.New("location repository: DB is nil")
	}

	query := `SELECT ` + locationColumns + ` FROM locations WHERE location_id = $1;`

	s, err := scanLocation(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get location %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get location %d: %w", id, err)
	}

	return &s, nil
}
