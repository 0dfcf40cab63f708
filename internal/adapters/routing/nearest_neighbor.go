package routing

import (
	"context"
	"itinerary-planner-service/internal/domain"
	"math"
)

// NearestNeighborOrderer orders stops with a greedy nearest-neighbor walk
// over Haversine distances.
//
// At each step it visits the closest remaining stop, breaking ties in favor
// of the first stop in input order. This is a heuristic, not a TSP solver:
// it prioritizes determinism and zero external dependencies over global
// optimality.
type NearestNeighborOrderer struct{}

func NewNearestNeighborOrderer() *NearestNeighborOrderer {
	return &NearestNeighborOrderer{}
}

// Order returns the stops as an unannotated permutation in greedy
// nearest-first order. It never fails.
func (o *NearestNeighborOrderer) Order(
	ctx context.Context,
	start domain.Coordinate,
	stops []domain.Stop,
) []domain.RouteOrderedStop {
	ordered := make([]domain.RouteOrderedStop, 0, len(stops))
	if len(stops) == 0 {
		return ordered
	}

	visited := make([]bool, len(stops))
	current := start

	for range stops {
		best := -1
		minDist := math.MaxFloat64

		for i, s := range stops {
			if visited[i] {
				continue
			}
			// Strict less-than keeps the earliest input stop on ties.
			if d := domain.Haversine(current, s.Position); d < minDist {
				minDist = d
				best = i
			}
		}

		visited[best] = true
		ordered = append(ordered, domain.RouteOrderedStop{Stop: stops[best]})
		current = stops[best].Position
	}

	return ordered
}
