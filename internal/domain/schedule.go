package domain

import "time"

// SegmentType discriminates the three kinds of schedule segment.
type SegmentType string

const (
	SegmentTravel SegmentType = "travel"
	SegmentBreak  SegmentType = "break"
	SegmentVisit  SegmentType = "visit"
)

// ScheduleSegment is one atomic scheduled unit within a day.
//
// DistanceKm is set for travel segments, Label for breaks, and Stop for
// visits; the other fields are zero for the remaining kinds.
type ScheduleSegment struct {
	Type        SegmentType
	StartTime   TimeOfDay
	EndTime     TimeOfDay
	DurationMin int
	DistanceKm  float64
	Label       string
	Stop        *RouteOrderedStop
}

// DaySchedule is the ordered, time-boxed plan for one trip day.
// Segments are strictly time-ordered and non-overlapping, and the last
// segment never ends after the trip's daily end time.
type DaySchedule struct {
	DayNumber int
	Date      time.Time
	Segments  []ScheduleSegment
}
