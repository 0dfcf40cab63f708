package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"itinerary-planner-service/internal/api/dto"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"log"
	"net/http"
	"strings"
	"time"
)

// TripHandler exposes trip CRUD and the trip's stop selection.
type TripHandler struct {
	Repo ports.TripRepository
}

func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}

	startTime, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start_time must be HH:MM")
		return
	}

	endTime, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "end_time must be HH:MM")
		return
	}

	availableHours := req.AvailableHoursPerDay
	if availableHours == 0 {
		availableHours = 8
	}

	trip := domain.Trip{
		Title:                strings.TrimSpace(req.Title),
		StartName:            strings.TrimSpace(req.StartName),
		Start:                domain.Coordinate{Lat: req.StartLat, Lon: req.StartLon},
		StartDate:            startDate,
		StartTime:            startTime,
		EndTime:              endTime,
		NumDays:              req.NumDays,
		AvailableHoursPerDay: availableHours,
	}

	if err := trip.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.Repo.CreateTrip(r.Context(), &trip)
	if err != nil {
		log.Printf("create trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	trip.ID = id

	writeJSON(w, r, http.StatusCreated, tripResponse(&trip))
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	trips, err := h.Repo.ListTrips(r.Context())
	if err != nil {
		log.Printf("list trips failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTripsResponse{Trips: make([]dto.TripResponse, 0, len(trips))}
	for _, t := range trips {
		res.Trips = append(res.Trips, tripResponse(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid trip id")
		return
	}

	trip, err := h.Repo.GetTrip(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		log.Printf("get trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, tripResponse(trip))
}

func (h *TripHandler) AddStop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid trip id")
		return
	}

	var req dto.AddStopRequest
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil || req.LocationID <= 0 {
		writeError(w, r, http.StatusBadRequest, "location_id is required")
		return
	}

	if _, err := h.Repo.GetTrip(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "trip not found")
			return
		}
		log.Printf("add stop failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.Repo.AddStop(r.Context(), id, req.LocationID); err != nil {
		log.Printf("add stop failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "stop added"})
}

func (h *TripHandler) RemoveStop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid trip id")
		return
	}

	locationID, ok := pathID(r, "locationID")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid location id")
		return
	}

	err := h.Repo.RemoveStop(r.Context(), id, locationID)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "selected stop not found")
		return
	}
	if err != nil {
		log.Printf("remove stop failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "stop removed"})
}

func (h *TripHandler) ListStops(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid trip id")
		return
	}

	if _, err := h.Repo.GetTrip(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "trip not found")
			return
		}
		log.Printf("list stops failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	stops, err := h.Repo.ListStops(r.Context(), id)
	if err != nil {
		log.Printf("list stops failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLocationsResponse{Locations: make([]dto.LocationResponse, 0, len(stops))}
	for _, s := range stops {
		res.Locations = append(res.Locations, locationResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func tripResponse(t *domain.Trip) dto.TripResponse {
	return dto.TripResponse{
		TripID:               t.ID,
		Title:                t.Title,
		StartName:            t.StartName,
		StartLat:             t.Start.Lat,
		StartLon:             t.Start.Lon,
		StartDate:            t.StartDate.Format("2006-01-02"),
		StartTime:            t.StartTime.String(),
		EndTime:              t.EndTime.String(),
		NumDays:              t.NumDays,
		AvailableHoursPerDay: t.AvailableHoursPerDay,
	}
}
