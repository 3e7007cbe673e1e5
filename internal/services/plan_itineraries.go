package services

import (
	"context"
	"fmt"

	"sightseeing-route-service/internal/config"
	"sightseeing-route-service/internal/domain"
	"sightseeing-route-service/internal/platform/obs"
	"sightseeing-route-service/internal/ports"
)

// Strategy identifies one of the greedy selection heuristics.
type Strategy string

const (
	StrategyMaximizeCount      Strategy = "maximize_count"
	StrategyMaximizeImportance Strategy = "maximize_importance"
	StrategyMaximizeRate       Strategy = "maximize_rate"
)

// DefaultStrategies is the reporting order of the reference driver.
var DefaultStrategies = []Strategy{
	StrategyMaximizeCount,
	StrategyMaximizeImportance,
	StrategyMaximizeRate,
}

// ParseStrategy maps a request string onto a known strategy.
func ParseStrategy(s string) (Strategy, bool) {
	switch Strategy(s) {
	case StrategyMaximizeCount, StrategyMaximizeImportance, StrategyMaximizeRate:
		return Strategy(s), true
	default:
		return "", false
	}
}

func selectorFor(s Strategy) (func([]domain.Place, float64) domain.Route, bool) {
	switch s {
	case StrategyMaximizeCount:
		return MaximizeCount, true
	case StrategyMaximizeImportance:
		return MaximizeImportance, true
	case StrategyMaximizeRate:
		return MaximizeRate, true
	default:
		return nil, false
	}
}

// Itinerary is one selector's result, labeled by its strategy.
type Itinerary struct {
	Strategy Strategy
	Route    domain.Route
}

type PlanItinerariesRequest struct {
	Budget config.Budget
	// Strategies to run, in order. Empty means DefaultStrategies.
	Strategies []Strategy
}

// PlanItineraries runs the requested selection strategies over the places
// held by the repository and returns one labeled itinerary per strategy.
//
// Each selector sorts its own working copy, so earlier runs never affect
// later ones and repeated calls yield identical routes.
func PlanItineraries(
	ctx context.Context,
	req PlanItinerariesRequest,
	repo ports.PlaceRepository,
) (itineraries []Itinerary, err error) {
	defer obs.Time(ctx, "plan_itineraries")(&err)

	places, err := repo.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan itineraries: list places: %w", err)
	}

	strategies := req.Strategies
	if len(strategies) == 0 {
		strategies = DefaultStrategies
	}

	itineraries = make([]Itinerary, 0, len(strategies))
	for _, s := range strategies {
		selector, ok := selectorFor(s)
		if !ok {
			return nil, fmt.Errorf("plan itineraries: unknown strategy %q", s)
		}

		itineraries = append(itineraries, Itinerary{
			Strategy: s,
			Route:    selector(places, req.Budget.Available()),
		})
	}

	return itineraries, nil
}
