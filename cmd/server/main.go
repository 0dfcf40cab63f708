package main

import (
	"itinerary-planner-service/internal/adapters/cache"
	"itinerary-planner-service/internal/adapters/repositories"
	"itinerary-planner-service/internal/adapters/routing"
	"itinerary-planner-service/internal/api"
	"itinerary-planner-service/internal/config"
	"itinerary-planner-service/internal/platform/db"
	"itinerary-planner-service/internal/ports"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, the routing strategy) behind
// ports and starts the HTTP server. Exactly one route-ordering strategy is
// active per deployment, selected here and nowhere else.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}

	tripRepo := repositories.NewPostgresTripRepository(database)
	locationRepo := repositories.NewPostgresLocationRepository(database)
	scheduleStore := repositories.NewPostgresScheduleStore(database)

	orderer := buildOrderer()

	router := api.NewRouter(tripRepo, locationRepo, scheduleStore, orderer)

	// Write timeout leaves headroom for the external routing call (20 s).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildOrderer picks the route-ordering strategy: Google Directions when a
// key is configured (with an optional Redis result cache), otherwise the
// local nearest-neighbor heuristic.
func buildOrderer() ports.RouteOrderer {
	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Println("strategy=nearest-neighbor (GOOGLE_MAPS_API_KEY not set)")
		return routing.NewNearestNeighborOrderer()
	}

	var routeCache ports.RouteCache
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		routeCache = cache.NewRedisRouteCache(client, 24*time.Hour)
		log.Printf("route cache enabled addr=%s", addr)
	}

	orderer, err := routing.NewGoogleOrderer(apiKey, routeCache)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("strategy=google-directions")
	return orderer
}
