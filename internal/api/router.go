package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sightseeing-route-service/internal/api/handlers"
	"sightseeing-route-service/internal/config"
	"sightseeing-route-service/internal/metrics"
	"sightseeing-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.PlaceRepository, defaultBudget config.Budget) http.Handler {
	mux := http.NewServeMux()

	placeHandler := &handlers.PlaceHandler{Repo: repo}
	itineraryHandler := &handlers.ItineraryHandler{
		Repo:          repo,
		DefaultBudget: defaultBudget,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/places", placeHandler.List)
	mux.HandleFunc("/itineraries", itineraryHandler.Plan)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
