package services

import (
	"cmp"
	"slices"

	"sightseeing-route-service/internal/domain"
)

// Select the most important places that fit the time budget, by greedily
// taking the highest importance first.
//
// The sort is stable: places of equal importance keep their catalog order.
// The scan stops entirely at the first place that would overflow the
// budget; later, shorter places are never reconsidered.
func MaximizeImportance(places []domain.Place, availableHours float64) domain.Route {
	sorted := slices.Clone(places)
	slices.SortStableFunc(sorted, func(a, b domain.Place) int {
		return cmp.Compare(b.Importance, a.Importance)
	})

	var route domain.Route
	accHours := 0.0
	for _, p := range sorted {
		accHours += p.Duration
		if accHours > availableHours {
			break
		}
		route.AddPlace(p)
	}

	return route
}
