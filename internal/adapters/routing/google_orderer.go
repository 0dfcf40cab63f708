package routing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Directions API caps a single request at 23 optimizable waypoints.
const maxWaypoints = 23

// GoogleOrderer implements RouteOrderer by delegating to the Google Maps
// Directions API with waypoint optimization.
//
// It requests a driving round trip (origin = destination = trip start) over
// the stop coordinates and adopts the returned waypoint order, annotating
// each ordered stop with its leg distance/duration and attaching the route
// polyline to the first stop. Any failure (HTTP error, non-OK status,
// malformed body, timeout) degrades to the input order with no annotations;
// Order never reports an error to the caller and never retries.
//
// An optional RouteCache short-circuits repeat requests for the same start
// and stop set. The orderer is safe for concurrent use.
type GoogleOrderer struct {
	session *http.Client
	apiKey  string
	baseURL string
	cache   ports.RouteCache
}

func NewGoogleOrderer(apiKey string, cache ports.RouteCache) (*GoogleOrderer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google orderer: api key is empty")
	}

	return &GoogleOrderer{
		session: &http.Client{Timeout: 20 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com",
		cache:   cache,
	}, nil
}

func (g *GoogleOrderer) Order(
	ctx context.Context,
	start domain.Coordinate,
	stops []domain.Stop,
) []domain.RouteOrderedStop {
	if len(stops) == 0 {
		return []domain.RouteOrderedStop{}
	}

	// Enforced defensively even though callers pre-validate stop counts.
	if len(stops) > maxWaypoints {
		log.Printf("op=route.order msg=\"waypoint limit exceeded, truncating\" got=%d max=%d", len(stops), maxWaypoints)
		stops = stops[:maxWaypoints]
	}

	key := routeKey(start, stops)
	if g.cache != nil {
		cached, err := g.cache.Get(ctx, key)
		if err != nil {
			log.Printf("op=route.order msg=\"route cache read failed\" err=%v", err)
		} else if len(cached) == len(stops) {
			return cached
		}
	}

	ordered, err := g.fetchOptimizedOrder(ctx, start, stops)
	if err != nil {
		log.Printf("op=route.order msg=\"directions request failed, using input order\" err=%v", err)
		return passthroughOrder(stops)
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, key, ordered); err != nil {
			log.Printf("op=route.order msg=\"route cache write failed\" err=%v", err)
		}
	}

	return ordered
}

// passthroughOrder is the degradation path: input order, no annotations.
func passthroughOrder(stops []domain.Stop) []domain.RouteOrderedStop {
	out := make([]domain.RouteOrderedStop, 0, len(stops))
	for _, s := range stops {
		out = append(out, domain.RouteOrderedStop{Stop: s})
	}
	return out
}

// routeKey derives a stable cache key from the start coordinate and the
// stop coordinates in input order.
func routeKey(start domain.Coordinate, stops []domain.Stop) string {
	var b strings.Builder
	b.WriteString(formatCoord(start))
	for _, s := range stops {
		b.WriteByte('|')
		b.WriteString(formatCoord(s.Position))
	}
	sum := sha256.Sum256([]byte(b.String()))
	return "route:" + hex.EncodeToString(sum[:])
}

func formatCoord(c domain.Coordinate) string {
	return strconv.FormatFloat(c.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lon, 'f', 6, 64)
}
