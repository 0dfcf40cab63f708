package ports

import (
	"context"
	"itinerary-planner-service/internal/domain"
)

// Port: a boundary for retrieving catalog locations (points of interest
// and service listings) from a data source.
type LocationRepository interface {
	// Retrieve all catalog locations.
	ListLocations(ctx context.Context) ([]domain.Stop, error)
	// Retrieve a single location by ID.
	GetLocation(ctx context.Context, id int64) (*domain.Stop, error)
}
