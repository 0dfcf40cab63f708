package dto

type LocationResponse struct {
	LocationID      int64   `json:"location_id"`
	Kind            string  `json:"kind"`
	Name            string  `json:"name"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
	VisitMinutes    int     `json:"visit_minutes"`
	Description     string  `json:"description"`
	ImageURL        string  `json:"image_url,omitempty"`
	ServiceCategory string  `json:"service_category,omitempty"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

type AddStopRequest struct {
	LocationID int64 `json:"location_id"`
}
