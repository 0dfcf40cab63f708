package domain

import (
	"math"
	"testing"
)

func TestHaversineKnownDistance(t *testing.T) {
	a := Coordinate{Lat: 12.30, Lon: 76.65}
	b := Coordinate{Lat: 12.31, Lon: 76.66}

	d := Haversine(a, b)
	if d < 1.4 || d > 1.7 {
		t.Fatalf("distance = %v, want roughly 1.55 km", d)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][2]Coordinate{
		{{Lat: 12.30, Lon: 76.65}, {Lat: 12.31, Lon: 76.66}},
		{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}},
		{{Lat: -33.86, Lon: 151.20}, {Lat: 51.50, Lon: -0.12}},
	}

	for _, p := range pairs {
		ab := Haversine(p[0], p[1])
		ba := Haversine(p[1], p[0])
		if ab != ba {
			t.Errorf("haversine(%v,%v) = %v but reverse = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestHaversineSamePoint(t *testing.T) {
	c := Coordinate{Lat: 12.30, Lon: 76.65}
	if d := Haversine(c, c); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestHaversineRoundsToTwoDecimals(t *testing.T) {
	a := Coordinate{Lat: 12.30, Lon: 76.65}
	b := Coordinate{Lat: 12.37, Lon: 76.71}

	d := Haversine(a, b)
	if d*100 != math.Trunc(d*100) {
		t.Fatalf("distance %v has more than 2 decimal places", d)
	}
}
