package domain

import "testing"

func TestRouteDerivedTotals(t *testing.T) {
	var r Route

	// empty route reports zeros everywhere
	if r.TotalTime() != 0 {
		t.Errorf("empty TotalTime = %v, want 0", r.TotalTime())
	}
	if r.TotalImportance() != 0 {
		t.Errorf("empty TotalImportance = %d, want 0", r.TotalImportance())
	}
	if r.Count() != 0 {
		t.Errorf("empty Count = %d, want 0", r.Count())
	}

	r.AddPlace(Place{Name: "A", Duration: 1.5, Importance: 3})
	r.AddPlace(Place{Name: "B", Duration: 2, Importance: 7})

	// totals are derived from the current contents on every call
	if got := r.TotalTime(); got != 3.5 {
		t.Errorf("TotalTime = %v, want 3.5", got)
	}
	if got := r.TotalImportance(); got != 10 {
		t.Errorf("TotalImportance = %d, want 10", got)
	}
	if got := r.Count(); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
}

func TestRouteRender(t *testing.T) {
	var r Route
	r.AddPlace(Place{Name: "Mednyj vsadnik", Duration: 1, Importance: 17})
	r.AddPlace(Place{Name: "Kunstkamera", Duration: 3.5, Importance: 4})

	want := "Total time: 4.5; Total value: 21; Places visited: 2\n" +
		" - Mednyj vsadnik (1h, 17), \n" +
		" - Kunstkamera (3.5h, 4)"

	if got := r.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRouteRenderEmpty(t *testing.T) {
	var r Route

	want := "Total time: 0; Total value: 0; Places visited: 0\n"
	if got := r.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestPlaceRate(t *testing.T) {
	p := Place{Name: "Spas na Krovi", Duration: 2, Importance: 9}

	if got := p.Rate(); got != 4.5 {
		t.Fatalf("Rate = %v, want 4.5", got)
	}
}
