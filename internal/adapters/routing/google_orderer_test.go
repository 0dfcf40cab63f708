package routing

import (
	"context"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStops(n int) []domain.Stop {
	stops := make([]domain.Stop, 0, n)
	for i := 0; i < n; i++ {
		stops = append(stops, domain.Stop{
			ID:       int64(i + 1),
			Kind:     domain.StopKindPOI,
			Position: domain.Coordinate{Lat: 12.30 + float64(i)*0.01, Lon: 76.65},
		})
	}
	return stops
}

func newTestOrderer(t *testing.T, handler http.HandlerFunc) (*GoogleOrderer, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	orderer, err := NewGoogleOrderer("test-key", nil)
	require.NoError(t, err)
	orderer.baseURL = srv.URL
	orderer.session = srv.Client()

	return orderer, srv
}

func directionsBody(order []int, legMeters []int, polyline string) string {
	orderParts := make([]string, 0, len(order))
	for _, i := range order {
		orderParts = append(orderParts, fmt.Sprintf("%d", i))
	}

	legs := make([]string, 0, len(legMeters))
	for _, m := range legMeters {
		legs = append(legs, fmt.Sprintf(
			`{"distance":{"value":%d,"text":"%d m"},"duration":{"value":%d,"text":"x"}}`,
			m, m, m/10,
		))
	}

	return fmt.Sprintf(
		`{"status":"OK","routes":[{"waypoint_order":[%s],"legs":[%s],"overview_polyline":{"points":%q}}]}`,
		strings.Join(orderParts, ","), strings.Join(legs, ","), polyline,
	)
}

func TestGoogleOrdererAdoptsServiceOrder(t *testing.T) {
	stops := testStops(3)

	orderer, _ := newTestOrderer(t, func(w http.ResponseWriter, r *http.Request) {
		// Round trip over 3 waypoints: 4 legs, last one is the return.
		fmt.Fprint(w, directionsBody([]int{2, 0, 1}, []int{1500, 2300, 800, 4000}, "poly123"))
	})

	ordered := orderer.Order(context.Background(), domain.Coordinate{Lat: 12.29, Lon: 76.64}, stops)

	require.Len(t, ordered, 3)
	assert.Equal(t, int64(3), ordered[0].ID)
	assert.Equal(t, int64(1), ordered[1].ID)
	assert.Equal(t, int64(2), ordered[2].ID)

	require.NotNil(t, ordered[0].LegDistanceKm)
	assert.Equal(t, 1.5, *ordered[0].LegDistanceKm)
	require.NotNil(t, ordered[0].LegDurationMin)
	assert.Equal(t, 3, *ordered[0].LegDurationMin)

	require.NotNil(t, ordered[1].LegDistanceKm)
	assert.Equal(t, 2.3, *ordered[1].LegDistanceKm)

	assert.Equal(t, "poly123", ordered[0].Polyline)
	assert.Empty(t, ordered[1].Polyline)
	assert.Empty(t, ordered[2].Polyline)
}

func TestGoogleOrdererRequestShape(t *testing.T) {
	stops := testStops(2)
	var query url.Values

	orderer, _ := newTestOrderer(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		fmt.Fprint(w, directionsBody([]int{0, 1}, []int{1000, 1000, 1000}, "p"))
	})

	start := domain.Coordinate{Lat: 12.29, Lon: 76.64}
	orderer.Order(context.Background(), start, stops)

	require.NotNil(t, query)
	assert.Equal(t, query.Get("origin"), query.Get("destination"), "round trip: destination equals origin")
	assert.Equal(t, "driving", query.Get("mode"))
	assert.Equal(t, "test-key", query.Get("key"))

	waypoints := strings.Split(query.Get("waypoints"), "|")
	require.NotEmpty(t, waypoints)
	assert.Equal(t, "optimize:true", waypoints[0])
	assert.Len(t, waypoints[1:], 2)
}

func TestGoogleOrdererFallsBackOnHTTPError(t *testing.T) {
	stops := testStops(3)

	orderer, _ := newTestOrderer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	ordered := orderer.Order(context.Background(), domain.Coordinate{}, stops)

	require.Len(t, ordered, 3)
	for i, s := range ordered {
		assert.Equal(t, stops[i].ID, s.ID, "fallback must preserve input order")
		assert.Nil(t, s.LegDistanceKm)
		assert.Nil(t, s.LegDurationMin)
		assert.Empty(t, s.Polyline)
	}
}

func TestGoogleOrdererFallsBackOnServiceStatus(t *testing.T) {
	stops := testStops(2)

	orderer, _ := newTestOrderer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"OVER_QUERY_LIMIT","routes":[]}`)
	})

	ordered := orderer.Order(context.Background(), domain.Coordinate{}, stops)

	require.Len(t, ordered, 2)
	assert.Equal(t, int64(1), ordered[0].ID)
	assert.Equal(t, int64(2), ordered[1].ID)
	assert.Nil(t, ordered[0].LegDistanceKm)
}

func TestGoogleOrdererFallsBackOnMalformedBody(t *testing.T) {
	stops := testStops(2)

	orderer, _ := newTestOrderer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"OK","routes":[{"waypoint_order":[0]`)
	})

	ordered := orderer.Order(context.Background(), domain.Coordinate{}, stops)

	require.Len(t, ordered, 2)
	assert.Equal(t, int64(1), ordered[0].ID)
}

func TestGoogleOrdererTruncatesToWaypointLimit(t *testing.T) {
	stops := testStops(24)
	var query url.Values

	orderer, _ := newTestOrderer(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()

		order := make([]int, 23)
		meters := make([]int, 24)
		for i := range order {
			order[i] = i
			meters[i] = 1000
		}
		meters[23] = 1000
		fmt.Fprint(w, directionsBody(order, meters, "p"))
	})

	ordered := orderer.Order(context.Background(), domain.Coordinate{}, stops)

	require.Len(t, ordered, 23)
	for _, s := range ordered {
		assert.NotEqual(t, int64(24), s.ID, "the 24th stop must never reach the output")
	}

	require.NotNil(t, query)
	waypoints := strings.Split(query.Get("waypoints"), "|")
	assert.Len(t, waypoints[1:], 23, "request must carry at most 23 waypoints")
}

func TestGoogleOrdererEmptyInput(t *testing.T) {
	orderer, err := NewGoogleOrderer("test-key", nil)
	require.NoError(t, err)

	ordered := orderer.Order(context.Background(), domain.Coordinate{}, nil)
	assert.Empty(t, ordered)
}

func TestNewGoogleOrdererRequiresKey(t *testing.T) {
	_, err := NewGoogleOrderer("  ", nil)
	require.Error(t, err)
}
