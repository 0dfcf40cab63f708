package domain

// StopKind tags the two catalog sources a stop can come from.
type StopKind string

const (
	StopKindPOI     StopKind = "point-of-interest"
	StopKindListing StopKind = "service-listing"
)

// Fallback visit length when a stop has no configured duration.
const DefaultVisitMinutes = 60

// Stop is a candidate visit on a trip: a point of interest or a service
// listing. Stops are read-only inputs to the planner and are never mutated
// by it.
type Stop struct {
	ID              int64
	Kind            StopKind
	Position        Coordinate
	Name            string
	VisitMinutes    int
	Description     string
	ImageURL        string
	ServiceCategory string
}

// VisitDuration returns the expected visit length in minutes,
// defaulting to 60 when unset.
func (s Stop) VisitDuration() int {
	if s.VisitMinutes <= 0 {
		return DefaultVisitMinutes
	}
	return s.VisitMinutes
}

// RouteOrderedStop is a Stop placed in visiting order. When the external
// routing service produced the order, each stop carries the measured
// distance/duration of the leg leading to it, and the first stop carries
// the route's overview polyline.
type RouteOrderedStop struct {
	Stop
	LegDistanceKm  *float64
	LegDurationMin *int
	Polyline       string
}
