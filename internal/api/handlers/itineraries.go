package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"sightseeing-route-service/internal/api/dto"
	"sightseeing-route-service/internal/config"
	"sightseeing-route-service/internal/ports"
	"sightseeing-route-service/internal/services"
)

type ItineraryHandler struct {
	Repo          ports.PlaceRepository
	DefaultBudget config.Budget
}

// Plan runs the selection heuristics over the catalog and returns one
// itinerary per requested strategy. It coordinates request validation,
// budget resolution, and the planning service.
func (h *ItineraryHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ItineraryRequest

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

	var strategies []services.Strategy
	if s := strings.TrimSpace(req.Strategy); s != "" {
		strategy, ok := services.ParseStrategy(s)
		if !ok {
			writeError(w, r, http.StatusBadRequest, "unknown strategy")
			return
		}
		strategies = []services.Strategy{strategy}
	}

	budget := h.DefaultBudget
	if req.VisitWindowHours != nil {
		budget.VisitWindowHours = *req.VisitWindowHours
	}
	if req.RestTimeHours != nil {
		budget.RestTimeHours = *req.RestTimeHours
	}

	if budget.VisitWindowHours <= 0 {
		writeError(w, r, http.StatusBadRequest, "visit_window_hours must be positive")
		return
	}
	if budget.RestTimeHours < 0 {
		writeError(w, r, http.StatusBadRequest, "rest_time_hours must be non-negative")
		return
	}
	if budget.Available() < 0 {
		writeError(w, r, http.StatusBadRequest, "rest_time_hours must not exceed visit_window_hours")
		return
	}

	svcReq := services.PlanItinerariesRequest{
		Budget:     budget,
		Strategies: strategies,
	}

	itineraries, err := services.PlanItineraries(r.Context(), svcReq, h.Repo)
	if err != nil {
		log.Printf("plan itineraries failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListItinerariesResponse{
		Itineraries: make([]dto.ItineraryResponse, 0, len(itineraries)),
	}
	for _, it := range itineraries {
		places := make([]dto.PlaceResponse, 0, it.Route.Count())
		for _, p := range it.Route.Places {
			places = append(places, dto.PlaceResponse{
				Name:          p.Name,
				DurationHours: p.Duration,
				Importance:    p.Importance,
			})
		}

		res.Itineraries = append(res.Itineraries, dto.ItineraryResponse{
			Strategy:        string(it.Strategy),
			TotalTimeHours:  it.Route.TotalTime(),
			TotalImportance: it.Route.TotalImportance(),
			PlacesVisited:   it.Route.Count(),
			Places:          places,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
