package handlers

import (
	"errors"
	"itinerary-planner-service/internal/api/dto"
	"itinerary-planner-service/internal/domain"
	"itinerary-planner-service/internal/ports"
	"itinerary-planner-service/internal/services"
	"log"
	"net/http"
)

// Upper bound accepted per trip; the external routing strategy cannot
// optimize more waypoints than this in one request.
const maxSelectedStops = 23

// ScheduleHandler generates and serves day-by-day trip schedules.
type ScheduleHandler struct {
	Trips   ports.TripRepository
	Store   ports.ScheduleStore
	Orderer ports.RouteOrderer
}

// Generate runs the schedule assembler for a trip and replaces its stored
// schedule with the result.
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid trip id")
		return
	}

	trip, err := h.Trips.GetTrip(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		log.Printf("generate schedule failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	stops, err := h.Trips.ListStops(r.Context(), id)
	if err != nil {
		log.Printf("generate schedule failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if len(stops) == 0 {
		writeError(w, r, http.StatusBadRequest, "no stops selected for this trip")
		return
	}
	if len(stops) > maxSelectedStops {
		writeError(w, r, http.StatusBadRequest, "too many stops selected; the maximum is 23")
		return
	}

	days, err := services.GenerateSchedule(r.Context(), trip, stops, h.Orderer)
	if err != nil {
		log.Printf("generate schedule failed: trip=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "schedule generation failed")
		return
	}

	if err := h.Store.ReplaceSchedule(r.Context(), id, days); err != nil {
		log.Printf("persist schedule failed: trip=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, scheduleResponse(id, days))
}

// Get returns the stored schedule for a trip.
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid trip id")
		return
	}

	days, err := h.Store.GetSchedule(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "no schedule generated for this trip")
		return
	}
	if err != nil {
		log.Printf("get schedule failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, scheduleResponse(id, days))
}

func scheduleResponse(tripID int64, days []domain.DaySchedule) dto.ScheduleResponse {
	res := dto.ScheduleResponse{
		TripID: tripID,
		Days:   make([]dto.DayResponse, 0, len(days)),
	}

	for _, day := range days {
		dayRes := dto.DayResponse{
			DayNumber: day.DayNumber,
			Date:      day.Date.Format("2006-01-02"),
			Segments:  make([]dto.SegmentResponse, 0, len(day.Segments)),
		}

		for _, seg := range day.Segments {
			segRes := dto.SegmentResponse{
				Type:            string(seg.Type),
				StartTime:       seg.StartTime.String(),
				EndTime:         seg.EndTime.String(),
				DurationMinutes: seg.DurationMin,
				Label:           seg.Label,
			}
			if seg.Type == domain.SegmentTravel {
				d := seg.DistanceKm
				segRes.DistanceKm = &d
			}
			if seg.Stop != nil {
				loc := locationResponse(seg.Stop.Stop)
				segRes.Location = &loc
			}
			dayRes.Segments = append(dayRes.Segments, segRes)
		}

		res.Days = append(res.Days, dayRes)
	}

	return res
}
