package repositories

import (
	"context"
	"errors"
	"slices"

	"sightseeing-route-service/internal/domain"
)

// In-memory implementation of the PlaceRepository port, backed by the
// compiled-in catalog. The catalog is static trusted data, so no external
// store sits behind this adapter.
type MemoryPlaceRepository struct {
	places []domain.Place
}

func NewMemoryPlaceRepository(places []domain.Place) *MemoryPlaceRepository {
	return &MemoryPlaceRepository{places: slices.Clone(places)}
}

// Return a copy of all places so callers can sort without aliasing the
// repository's backing slice.
func (m *MemoryPlaceRepository) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	if m == nil {
		return nil, errors.New("memory place repository: repository is nil")
	}

	return slices.Clone(m.places), nil
}
