package ports

import (
	"context"

	"sightseeing-route-service/internal/domain"
)

// Port: a boundary for retrieving catalog places from a data source.
type PlaceRepository interface {
	// Retrieve all places available for itinerary planning.
	ListPlaces(ctx context.Context) ([]domain.Place, error)
}
