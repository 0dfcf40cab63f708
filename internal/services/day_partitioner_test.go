package services

import (
	"itinerary-planner-service/internal/domain"
	"testing"
)

func orderedStops(n, visitMinutes int) []domain.RouteOrderedStop {
	stops := make([]domain.RouteOrderedStop, 0, n)
	for i := 0; i < n; i++ {
		stops = append(stops, domain.RouteOrderedStop{Stop: domain.Stop{
			ID:           int64(i + 1),
			Kind:         domain.StopKindPOI,
			VisitMinutes: visitMinutes,
		}})
	}
	return stops
}

func bucketIDs(bucket []domain.RouteOrderedStop) []int64 {
	ids := make([]int64, 0, len(bucket))
	for _, s := range bucket {
		ids = append(ids, s.ID)
	}
	return ids
}

func assertIDs(t *testing.T, got []int64, want ...int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("bucket = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket = %v, want %v", got, want)
		}
	}
}

func TestSplitByDaysEmptyInput(t *testing.T) {
	days := SplitByDays(nil, 3, 480)

	if len(days) != 3 {
		t.Fatalf("got %d days, want 3", len(days))
	}
	for i, d := range days {
		if len(d) != 0 {
			t.Errorf("day %d has %d stops, want 0", i+1, len(d))
		}
	}
}

func TestSplitByDaysSingleDay(t *testing.T) {
	days := SplitByDays(orderedStops(4, 60), 1, 480)

	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	assertIDs(t, bucketIDs(days[0]), 1, 2, 3, 4)
}

func TestSplitByDaysCapacityChunks(t *testing.T) {
	// 60-minute visits + 30-minute travel estimate = 90 per stop;
	// 480 / 90 = capacity 5 per day.
	days := SplitByDays(orderedStops(9, 60), 3, 480)

	if len(days) != 3 {
		t.Fatalf("got %d days, want 3", len(days))
	}
	assertIDs(t, bucketIDs(days[0]), 1, 2, 3, 4, 5)
	assertIDs(t, bucketIDs(days[1]), 6, 7, 8, 9)
	assertIDs(t, bucketIDs(days[2]))
}

func TestSplitByDaysLeftoverRoundRobin(t *testing.T) {
	// Capacity 180/90 = 2 per day; chunks take stops 1-4, leftovers
	// 5, 6, 7 land round-robin on days 1, 2, 1.
	days := SplitByDays(orderedStops(7, 60), 2, 180)

	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	assertIDs(t, bucketIDs(days[0]), 1, 2, 5, 7)
	assertIDs(t, bucketIDs(days[1]), 3, 4, 6)
}

func TestSplitByDaysCapacityFloorIsOne(t *testing.T) {
	// A tiny budget still places at least one stop per chunk.
	days := SplitByDays(orderedStops(3, 240), 3, 60)

	if len(days) != 3 {
		t.Fatalf("got %d days, want 3", len(days))
	}
	assertIDs(t, bucketIDs(days[0]), 1)
	assertIDs(t, bucketIDs(days[1]), 2)
	assertIDs(t, bucketIDs(days[2]), 3)
}
