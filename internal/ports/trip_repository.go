package ports

import (
	"context"
	"itinerary-planner-service/internal/domain"
)

// Port: a boundary for trip persistence and the trip's selected stops.
type TripRepository interface {
	CreateTrip(ctx context.Context, trip *domain.Trip) (int64, error)
	GetTrip(ctx context.Context, id int64) (*domain.Trip, error)
	ListTrips(ctx context.Context) ([]*domain.Trip, error)

	// AddStop attaches a catalog location to the trip's selection.
	AddStop(ctx context.Context, tripID, locationID int64) error
	// RemoveStop detaches a location from the trip's selection.
	RemoveStop(ctx context.Context, tripID, locationID int64) error
	// ListStops returns the trip's selected stops in insertion order.
	ListStops(ctx context.Context, tripID int64) ([]domain.Stop, error)
}
