package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/platform/obs"
	"math"
	"net/http"
	"net/url"
	"strings"
)

type valueText struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

type directionsLeg struct {
	Distance valueText `json:"distance"`
	Duration valueText `json:"duration"`
}

type directionsRoute struct {
	WaypointOrder    []int           `json:"waypoint_order"`
	Legs             []directionsLeg `json:"legs"`
	OverviewPolyline struct {
		Points string `json:"points"`
	} `json:"overview_polyline"`
}

type directionsResponse struct {
	Status string            `json:"status"`
	Routes []directionsRoute `json:"routes"`
}

// fetchOptimizedOrder asks the Directions API for an optimized driving
// round trip over the stops and maps the response back onto them.
func (g *GoogleOrderer) fetchOptimizedOrder(
	ctx context.Context,
	start domain.Coordinate,
	stops []domain.Stop,
) (_ []domain.RouteOrderedStop, err error) {
	defer obs.Time(ctx, "directions.fetch")(&err)

	endpoint := g.baseURL + "/maps/api/directions/json"

	waypoints := make([]string, 0, 1+len(stops))
	waypoints = append(waypoints, "optimize:true")
	for _, s := range stops {
		waypoints = append(waypoints, formatCoord(s.Position))
	}

	origin := formatCoord(start)
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", origin)
	q.Set("waypoints", strings.Join(waypoints, "|"))
	q.Set("mode", "driving")
	q.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create directions request: %w", err)
	}

	resp, err := g.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute directions request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directions request: unexpected status %d", resp.StatusCode)
	}

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if decoded.Status != "OK" {
		return nil, fmt.Errorf("directions service status %q", decoded.Status)
	}
	if len(decoded.Routes) == 0 {
		return nil, fmt.Errorf("directions response has no routes")
	}

	route := decoded.Routes[0]
	if len(route.WaypointOrder) != len(stops) {
		return nil, fmt.Errorf(
			"waypoint order length %d does not match %d stops",
			len(route.WaypointOrder), len(stops),
		)
	}

	ordered := make([]domain.RouteOrderedStop, 0, len(stops))
	for i, idx := range route.WaypointOrder {
		if idx < 0 || idx >= len(stops) {
			return nil, fmt.Errorf("waypoint order index %d out of range", idx)
		}

		stop := domain.RouteOrderedStop{Stop: stops[idx]}

		// Leg i is the drive into the i-th ordered stop; the final leg is
		// the return to the origin and is not attached to any stop.
		if i < len(route.Legs) {
			km := math.Round(route.Legs[i].Distance.Value/1000*100) / 100
			mins := int(math.Round(route.Legs[i].Duration.Value / 60))
			stop.LegDistanceKm = &km
			stop.LegDurationMin = &mins
		}

		ordered = append(ordered, stop)
	}

	ordered[0].Polyline = route.OverviewPolyline.Points

	return ordered, nil
}
