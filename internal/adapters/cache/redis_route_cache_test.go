package cache

import (
	"context"
	"itinerary-planner-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *RedisRouteCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisRouteCache(client, time.Minute)
}

func TestRedisRouteCacheMissReturnsNil(t *testing.T) {
	c := newTestCache(t)

	got, err := c.Get(context.Background(), "route:absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisRouteCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)

	km := 4.2
	mins := 12
	ordered := []domain.RouteOrderedStop{
		{
			Stop: domain.Stop{
				ID:       1,
				Kind:     domain.StopKindPOI,
				Position: domain.Coordinate{Lat: 12.31, Lon: 76.66},
				Name:     "Palace",
			},
			LegDistanceKm:  &km,
			LegDurationMin: &mins,
			Polyline:       "poly123",
		},
		{
			Stop: domain.Stop{
				ID:       2,
				Kind:     domain.StopKindListing,
				Position: domain.Coordinate{Lat: 12.27, Lon: 76.67},
				Name:     "Hotel",
			},
		},
	}

	require.NoError(t, c.Put(context.Background(), "route:abc", ordered))

	got, err := c.Get(context.Background(), "route:abc")
	require.NoError(t, err)
	require.Equal(t, ordered, got)
}

func TestRedisRouteCacheCorruptEntry(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	c := NewRedisRouteCache(client, time.Minute)

	require.NoError(t, srv.Set("route:bad", "not json"))

	_, err := c.Get(context.Background(), "route:bad")
	assert.Error(t, err)
}
