package services

import (
	"cmp"
	"slices"

	"sightseeing-route-service/internal/domain"
)

// placeRate pairs a catalog index with its precomputed importance-per-hour
// rate. It references the input slice by index rather than duplicating the
// place, and lives only for the duration of one MaximizeRate call.
type placeRate struct {
	idx  int
	rate float64
}

// Select places by value density: greedily take the highest importance
// earned per hour spent.
//
// This approximates the best use of the budget but remains a greedy
// heuristic: the scan stops entirely at the first place that would
// overflow, so it is provably suboptimal in general.
func MaximizeRate(places []domain.Place, availableHours float64) domain.Route {
	rates := make([]placeRate, 0, len(places))
	for i, p := range places {
		rates = append(rates, placeRate{idx: i, rate: p.Rate()})
	}

	slices.SortFunc(rates, func(a, b placeRate) int {
		if c := cmp.Compare(b.rate, a.rate); c != 0 {
			return c
		}
		// Tie-breaker keeps catalog order for equal rates so results stay
		// deterministic.
		return cmp.Compare(a.idx, b.idx)
	})

	var route domain.Route
	accHours := 0.0
	for _, r := range rates {
		p := places[r.idx]
		accHours += p.Duration
		if accHours > availableHours {
			break
		}
		route.AddPlace(p)
	}

	return route
}
