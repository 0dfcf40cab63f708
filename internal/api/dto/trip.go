package dto

type CreateTripRequest struct {
	Title                string  `json:"title"`
	StartName            string  `json:"start_name"`
	StartLat             float64 `json:"start_lat"`
	StartLon             float64 `json:"start_lon"`
	StartDate            string  `json:"start_date"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	NumDays              int     `json:"num_days"`
	AvailableHoursPerDay int     `json:"available_hours_per_day"`
}

type TripResponse struct {
	TripID               int64   `json:"trip_id"`
	Title                string  `json:"title"`
	StartName            string  `json:"start_name"`
	StartLat             float64 `json:"start_lat"`
	StartLon             float64 `json:"start_lon"`
	StartDate            string  `json:"start_date"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	NumDays              int     `json:"num_days"`
	AvailableHoursPerDay int     `json:"available_hours_per_day"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}
