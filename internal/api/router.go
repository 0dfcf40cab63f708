package api

import (
	"itinerary-planner-service/internal/api/handlers"
	"itinerary-planner-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	trips ports.TripRepository,
	locations ports.LocationRepository,
	schedules ports.ScheduleStore,
	orderer ports.RouteOrderer,
) http.Handler {
	mux := http.NewServeMux()

	locationHandler := &handlers.LocationHandler{Repo: locations}
	tripHandler := &handlers.TripHandler{Repo: trips}
	scheduleHandler := &handlers.ScheduleHandler{
		Trips:   trips,
		Store:   schedules,
		Orderer: orderer,
	}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /locations", locationHandler.List)

	mux.HandleFunc("POST /trips", tripHandler.Create)
	mux.HandleFunc("GET /trips", tripHandler.List)
	mux.HandleFunc("GET /trips/{id}", tripHandler.Get)

	mux.HandleFunc("GET /trips/{id}/stops", tripHandler.ListStops)
	mux.HandleFunc("POST /trips/{id}/stops", tripHandler.AddStop)
	mux.HandleFunc("DELETE /trips/{id}/stops/{locationID}", tripHandler.RemoveStop)

	mux.HandleFunc("POST /trips/{id}/schedule", scheduleHandler.Generate)
	mux.HandleFunc("GET /trips/{id}/schedule", scheduleHandler.Get)

	return loggingMiddleware(mux)
}
