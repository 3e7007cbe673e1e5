package handlers

import (
	"log"
	"net/http"

	"sightseeing-route-service/internal/api/dto"
	"sightseeing-route-service/internal/ports"
)

// PlaceHandler exposes read-only catalog retrieval endpoints.
type PlaceHandler struct {
	Repo ports.PlaceRepository
}

func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	places, err := h.Repo.ListPlaces(r.Context())
	if err != nil {
		log.Printf("list places failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlacesResponse{
		Places: make([]dto.PlaceResponse, 0, len(places)),
	}
	for _, p := range places {
		res.Places = append(res.Places, dto.PlaceResponse{
			Name:          p.Name,
			DurationHours: p.Duration,
			Importance:    p.Importance,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
