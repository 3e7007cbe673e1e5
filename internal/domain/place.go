package domain

// Represents a single sightseeing stop candidate.
// A Place is an immutable value: a name, a visit duration in hours,
// and an importance score. Places are copied freely and never mutated
// after catalog construction.
type Place struct {
	Name       string
	Duration   float64
	Importance int
}

// Rate returns the importance earned per hour spent at the place,
// used as a value-density ranking key.
func (p Place) Rate() float64 {
	return float64(p.Importance) / p.Duration
}
