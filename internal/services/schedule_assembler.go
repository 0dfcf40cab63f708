package services

import (
	"context"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/platform/obs"
	"itinerary-planner-service/internal/ports"
)

// Tunables of the per-day segment builder.
const (
	averageSpeedKmh     = 40
	bufferMinutes       = 15
	minTravelMinutes    = 5
	minTravelDistanceKm = 0.5
	lunchBreakLabel     = "Lunch Break"
)

// GenerateSchedule turns a trip's selected stops into a day-by-day plan of
// travel, break, and visit segments.
//
// The orderer decides the visiting order (greedy heuristic or external
// routing service); SplitByDays buckets the ordered stops per day; this
// function then walks each day's bucket, inserting a travel segment per leg
// (estimated from Haversine distance at 40 km/h, regardless of orderer
// annotations), a 15-minute buffer after every leg, a fixed 13:00-14:00
// lunch break when the clock lands in the lunch window, and the visit
// itself. A day that runs out of budget drops its remaining stops silently;
// the output always has exactly trip.NumDays entries.
func GenerateSchedule(
	ctx context.Context,
	trip *domain.Trip,
	stops []domain.Stop,
	orderer ports.RouteOrderer,
) (_ []domain.DaySchedule, err error) {
	defer obs.Time(ctx, "schedule.generate")(&err)

	if trip == nil {
		return nil, fmt.Errorf("generate schedule: trip must be non-nil")
	}
	if len(stops) == 0 {
		return nil, fmt.Errorf("generate schedule: %w", domain.ErrNoStopsSelected)
	}
	if err := trip.Validate(); err != nil {
		return nil, fmt.Errorf("generate schedule: %w", err)
	}

	ordered := orderer.Order(ctx, trip.Start, stops)
	buckets := SplitByDays(ordered, trip.NumDays, trip.DailyBudgetMinutes())

	days := make([]domain.DaySchedule, 0, trip.NumDays)

	// Where each day starts from: the previous day's last visited stop, or
	// the trip start when the previous day had no visits.
	dayStart := trip.Start

	for d := 1; d <= trip.NumDays; d++ {
		day := domain.DaySchedule{
			DayNumber: d,
			Date:      trip.DateForDay(d),
			Segments:  []domain.ScheduleSegment{},
		}

		current := trip.StartTime
		position := dayStart
		visitedAny := false

		for i := range buckets[d-1] {
			stop := buckets[d-1][i]

			distanceKm := domain.Haversine(position, stop.Position)
			travelMin := int(distanceKm / averageSpeedKmh * 60)
			if travelMin < minTravelMinutes {
				travelMin = minTravelMinutes
			}

			// Legs shorter than 0.5 km are treated as on-site movement:
			// no travel segment and no time charged.
			if distanceKm > minTravelDistanceKm {
				travelEnd := current.Add(travelMin)
				if travelEnd.After(trip.EndTime) {
					break
				}
				day.Segments = append(day.Segments, domain.ScheduleSegment{
					Type:        domain.SegmentTravel,
					StartTime:   current,
					EndTime:     travelEnd,
					DurationMin: travelMin,
					DistanceKm:  distanceKm,
				})
				current = travelEnd
			}

			current = current.Add(bufferMinutes)

			if domain.InLunchWindow(current) {
				day.Segments = append(day.Segments, domain.ScheduleSegment{
					Type:        domain.SegmentBreak,
					StartTime:   domain.LunchStart,
					EndTime:     domain.LunchEnd,
					DurationMin: domain.LunchEnd.Minutes() - domain.LunchStart.Minutes(),
					Label:       lunchBreakLabel,
				})
				current = domain.LunchEnd
			}

			visitEnd := current.Add(stop.VisitDuration())
			if visitEnd.After(trip.EndTime) {
				// Out of budget: the rest of this day's stops are dropped.
				break
			}

			day.Segments = append(day.Segments, domain.ScheduleSegment{
				Type:        domain.SegmentVisit,
				StartTime:   current,
				EndTime:     visitEnd,
				DurationMin: stop.VisitDuration(),
				Stop:        &buckets[d-1][i],
			})
			current = visitEnd
			position = stop.Position
			visitedAny = true
		}

		if visitedAny {
			dayStart = position
		} else {
			dayStart = trip.Start
		}

		days = append(days, day)
	}

	return days, nil
}
