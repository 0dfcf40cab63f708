package services

import "itinerary-planner-service/internal/domain"

// Flat travel estimate used for capacity planning only; actual travel
// segments are computed per leg by the assembler.
const avgTravelMinutes = 30

// SplitByDays buckets an ordered stop list into numDays per-day lists.
//
// Capacity is estimated from the mean visit duration plus a flat travel
// allowance: perDayCapacity = max(1, availableMinutesPerDay / avgPerStop).
// The ordered list is sliced into contiguous chunks of that size, one per
// day; stops beyond numDays*capacity are spread round-robin across days.
// A day may end up over nominal capacity this way; the assembler's time
// budget is the hard limit, not this split.
func SplitByDays(ordered []domain.RouteOrderedStop, numDays, availableMinutesPerDay int) [][]domain.RouteOrderedStop {
	days := make([][]domain.RouteOrderedStop, numDays)
	for i := range days {
		days[i] = []domain.RouteOrderedStop{}
	}

	if len(ordered) == 0 {
		return days
	}

	if numDays == 1 {
		days[0] = append(days[0], ordered...)
		return days
	}

	totalVisit := 0
	for _, s := range ordered {
		totalVisit += s.VisitDuration()
	}
	avgPerStop := float64(totalVisit)/float64(len(ordered)) + avgTravelMinutes

	perDay := int(float64(availableMinutesPerDay) / avgPerStop)
	if perDay < 1 {
		perDay = 1
	}

	for i := 0; i < numDays; i++ {
		start := min(i*perDay, len(ordered))
		end := min(start+perDay, len(ordered))
		days[i] = append(days[i], ordered[start:end]...)
	}

	// Leftover stops beyond the nominal chunks are spread round-robin.
	if leftoverStart := numDays * perDay; leftoverStart < len(ordered) {
		for i, s := range ordered[leftoverStart:] {
			day := i % numDays
			days[day] = append(days[day], s)
		}
	}

	return days
}
