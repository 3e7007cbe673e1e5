package services

import (
	"context"
	"errors"
	"testing"

	"sightseeing-route-service/internal/adapters/repositories"
	"sightseeing-route-service/internal/catalog"
	"sightseeing-route-service/internal/config"
	"sightseeing-route-service/internal/domain"
)

type failingRepo struct{ err error }

func (f *failingRepo) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	return nil, f.err
}

func TestPlanItinerariesDefaultOrder(t *testing.T) {
	repo := repositories.NewMemoryPlaceRepository(catalog.Places())

	req := PlanItinerariesRequest{Budget: config.DefaultBudget()}
	itineraries, err := PlanItineraries(context.Background(), req, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(itineraries) != 3 {
		t.Fatalf("expected 3 itineraries, got %d", len(itineraries))
	}

	wantOrder := []Strategy{StrategyMaximizeCount, StrategyMaximizeImportance, StrategyMaximizeRate}
	for i, want := range wantOrder {
		if itineraries[i].Strategy != want {
			t.Errorf("itinerary %d strategy = %q, want %q", i, itineraries[i].Strategy, want)
		}
	}

	// spot-check the reference results survive orchestration
	if got := itineraries[0].Route.Count(); got != 11 {
		t.Errorf("count route size = %d, want 11", got)
	}
	if got := itineraries[1].Route.TotalImportance(); got != 90 {
		t.Errorf("importance route value = %d, want 90", got)
	}
	if got := itineraries[2].Route.TotalTime(); got != 31.5 {
		t.Errorf("rate route time = %v, want 31.5", got)
	}
}

func TestPlanItinerariesSingleStrategy(t *testing.T) {
	repo := repositories.NewMemoryPlaceRepository(catalog.Places())

	req := PlanItinerariesRequest{
		Budget:     config.DefaultBudget(),
		Strategies: []Strategy{StrategyMaximizeRate},
	}
	itineraries, err := PlanItineraries(context.Background(), req, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(itineraries) != 1 {
		t.Fatalf("expected 1 itinerary, got %d", len(itineraries))
	}
	if itineraries[0].Strategy != StrategyMaximizeRate {
		t.Fatalf("strategy = %q, want %q", itineraries[0].Strategy, StrategyMaximizeRate)
	}
	if got := itineraries[0].Route.TotalImportance(); got != 133 {
		t.Fatalf("rate route value = %d, want 133", got)
	}
}

func TestPlanItinerariesUnknownStrategy(t *testing.T) {
	repo := repositories.NewMemoryPlaceRepository(catalog.Places())

	req := PlanItinerariesRequest{
		Budget:     config.DefaultBudget(),
		Strategies: []Strategy{Strategy("shortest_queue")},
	}
	if _, err := PlanItineraries(context.Background(), req, repo); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestPlanItinerariesRepoError(t *testing.T) {
	repo := &failingRepo{err: errors.New("backing store unavailable")}

	req := PlanItinerariesRequest{Budget: config.DefaultBudget()}
	if _, err := PlanItineraries(context.Background(), req, repo); err == nil {
		t.Fatal("expected repository error to propagate")
	}
}

func TestParseStrategy(t *testing.T) {
	if _, ok := ParseStrategy("maximize_count"); !ok {
		t.Error("maximize_count should parse")
	}
	if _, ok := ParseStrategy("maximise_count"); ok {
		t.Error("misspelled strategy should not parse")
	}
	if _, ok := ParseStrategy(""); ok {
		t.Error("empty strategy should not parse")
	}
}
