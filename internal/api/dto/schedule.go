package dto

type SegmentResponse struct {
	Type            string            `json:"type"`
	StartTime       string            `json:"start_time"`
	EndTime         string            `json:"end_time"`
	DurationMinutes int               `json:"duration_minutes"`
	DistanceKm      *float64          `json:"distance_km,omitempty"`
	Label           string            `json:"label,omitempty"`
	Location        *LocationResponse `json:"location,omitempty"`
}

type DayResponse struct {
	DayNumber int               `json:"day_number"`
	Date      string            `json:"date"`
	Segments  []SegmentResponse `json:"segments"`
}

type ScheduleResponse struct {
	TripID int64         `json:"trip_id"`
	Days   []DayResponse `json:"days"`
}
