package config

import "testing"

func TestGetHours(t *testing.T) {
	t.Setenv("TEST_HOURS", "40.5")
	if got := GetHours("TEST_HOURS", 48); got != 40.5 {
		t.Errorf("GetHours set = %v, want 40.5", got)
	}

	t.Setenv("TEST_HOURS", "not-a-number")
	if got := GetHours("TEST_HOURS", 48); got != 48 {
		t.Errorf("GetHours unparsable = %v, want fallback 48", got)
	}

	if got := GetHours("TEST_HOURS_UNSET", 16); got != 16 {
		t.Errorf("GetHours unset = %v, want fallback 16", got)
	}
}

func TestDefaultBudgetAvailable(t *testing.T) {
	b := DefaultBudget()

	if got := b.Available(); got != 32 {
		t.Fatalf("Available = %v, want 32", got)
	}
}

func TestBudgetFromEnv(t *testing.T) {
	t.Setenv("VISIT_WINDOW_HOURS", "24")
	t.Setenv("REST_TIME_HOURS", "8")

	b := BudgetFromEnv()
	if b.VisitWindowHours != 24 || b.RestTimeHours != 8 {
		t.Fatalf("BudgetFromEnv = %+v, want 24/8", b)
	}
	if got := b.Available(); got != 16 {
		t.Fatalf("Available = %v, want 16", got)
	}
}
