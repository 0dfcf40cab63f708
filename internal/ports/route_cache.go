package ports

import (
	"context"
	"itinerary-planner-service/internal/domain"
)

// Optional cache for externally optimized route orderings, keyed by the
// start coordinate plus the stop set. A miss is (nil, nil); cache failures
// are reported but callers treat them as misses.
type RouteCache interface {
	Get(ctx context.Context, key string) ([]domain.RouteOrderedStop, error)
	Put(ctx context.Context, key string, ordered []domain.RouteOrderedStop) error
}
