package services

import (
	"cmp"
	"slices"

	"sightseeing-route-service/internal/domain"
)

// Select places so that as many as possible fit the time budget, by
// greedily taking the shortest visits first.
//
// Like the other selectors this is a deliberate approximation: the scan
// stops entirely at the first place that would overflow the budget, and no
// bounded-knapsack solve is attempted. The design prioritizes determinism
// and simplicity over optimality.
func MaximizeCount(places []domain.Place, availableHours float64) domain.Route {
	order := make([]int, len(places))
	for i := range places {
		order[i] = i
	}

	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(places[a].Duration, places[b].Duration); c != 0 {
			return c
		}
		// Tie-breaker keeps catalog order for equal durations so results
		// stay deterministic.
		return cmp.Compare(a, b)
	})

	var route domain.Route
	accHours := 0.0
	for _, i := range order {
		accHours += places[i].Duration
		if accHours > availableHours {
			break
		}
		route.AddPlace(places[i])
	}

	return route
}
