package config

import (
	"log"
	"os"
	"strconv"
)

// Reference day layout: a 48h visit window minus 16h of rest leaves a
// 32h planning budget.
const (
	DefaultVisitWindowHours = 48.0
	DefaultRestTimeHours    = 16.0
)

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetHours parses an hour count from the environment.
// Unset or unparsable values fall back to the given default.
func GetHours(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}

	return f
}

// Budget is the planning time budget. It is built once at startup and
// passed into the selectors; never a mutable process-wide global.
type Budget struct {
	VisitWindowHours float64
	RestTimeHours    float64
}

// Available returns the hours left for visits after rest is subtracted.
func (b Budget) Available() float64 {
	return b.VisitWindowHours - b.RestTimeHours
}

// DefaultBudget returns the reference configuration.
func DefaultBudget() Budget {
	return Budget{
		VisitWindowHours: DefaultVisitWindowHours,
		RestTimeHours:    DefaultRestTimeHours,
	}
}

// BudgetFromEnv builds the budget from environment overrides, falling back
// to the reference configuration.
func BudgetFromEnv() Budget {
	return Budget{
		VisitWindowHours: GetHours("VISIT_WINDOW_HOURS", DefaultVisitWindowHours),
		RestTimeHours:    GetHours("REST_TIME_HOURS", DefaultRestTimeHours),
	}
}
