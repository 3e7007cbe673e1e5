package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"sightseeing-route-service/internal/adapters/repositories"
	"sightseeing-route-service/internal/api"
	"sightseeing-route-service/internal/catalog"
	"sightseeing-route-service/internal/config"
	"sightseeing-route-service/internal/metrics"
)

// main is the application composition root.
// It wires the in-memory catalog repository behind the repository port and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	budget := config.BudgetFromEnv()
	if budget.Available() <= 0 {
		log.Fatalf("invalid budget: visit_window=%vh rest=%vh leaves no time for visits",
			budget.VisitWindowHours, budget.RestTimeHours)
	}

	metrics.RegisterDefault()

	repo := repositories.NewMemoryPlaceRepository(catalog.Places())
	router := api.NewRouter(repo, budget)

	log.Printf("Server listening addr=:%s visit_window=%vh rest=%vh available=%vh",
		port, budget.VisitWindowHours, budget.RestTimeHours, budget.Available())
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
