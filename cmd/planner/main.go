package main

import (
	"fmt"

	"sightseeing-route-service/internal/catalog"
	"sightseeing-route-service/internal/config"
	"sightseeing-route-service/internal/domain"
	"sightseeing-route-service/internal/services"
)

// The reference driver: runs the three selection heuristics over the
// compiled-in catalog with the fixed reference day layout and prints each
// resulting route. It consumes no arguments, flags, or environment
// variables, and always exits 0.
func main() {
	budget := config.DefaultBudget()

	sections := []struct {
		label    string
		selector func([]domain.Place, float64) domain.Route
	}{
		{"MaximizeCount", services.MaximizeCount},
		{"MaximizeImportance", services.MaximizeImportance},
		{"MaximizeRate", services.MaximizeRate},
	}

	for i, s := range sections {
		if i > 0 {
			fmt.Print("\n\n=================================\n\n")
		}

		route := s.selector(catalog.Places(), budget.Available())
		fmt.Printf("\n [ %s ] \n", s.label)
		fmt.Print(route.Render())
	}
	fmt.Println()
}
