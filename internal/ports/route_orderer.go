package ports

import (
	"context"
	"itinerary-planner-service/internal/domain"
)

// RouteOrderer produces a visiting order for a set of stops.
//
// Implementations must return a permutation of the input (possibly
// annotated with measured leg metrics) and must never fail: strategies
// backed by an external service degrade to the input order on any error
// instead of surfacing it.
type RouteOrderer interface {
	Order(ctx context.Context, start domain.Coordinate, stops []domain.Stop) []domain.RouteOrderedStop
}
