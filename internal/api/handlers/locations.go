package handlers

import (
	"itinerary-planner-service/internal/api/dto"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"log"
	"net/http"
)

// LocationHandler exposes read-only catalog retrieval endpoints.
type LocationHandler struct {
	Repo ports.LocationRepository
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.Repo.ListLocations(r.Context())
	if err != nil {
		log.Printf("list locations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationResponse, 0, len(locations)),
	}
	for _, l := range locations {
		res.Locations = append(res.Locations, locationResponse(l))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func locationResponse(s domain.Stop) dto.LocationResponse {
	return dto.LocationResponse{
		LocationID:      s.ID,
		Kind:            string(s.Kind),
		Name:            s.Name,
		Lat:             s.Position.Lat,
		Lon:             s.Position.Lon,
		VisitMinutes:    s.VisitDuration(),
		Description:     s.Description,
		ImageURL:        s.ImageURL,
		ServiceCategory: s.ServiceCategory,
	}
}
