package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Represents an ordered selection of places built by a single selector pass.
// A Route is appended to only while its selector runs and is treated as
// frozen once returned. Aggregate metrics are derived from the current
// contents on every call, never cached.
type Route struct {
	Places []Place
}

// AddPlace appends p to the route. The time budget is enforced by the
// selectors before appending, not here.
func (r *Route) AddPlace(p Place) {
	r.Places = append(r.Places, p)
}

// TotalTime returns the summed duration of all places, in hours.
func (r *Route) TotalTime() float64 {
	total := 0.0
	for _, p := range r.Places {
		total += p.Duration
	}
	return total
}

// TotalImportance returns the summed importance of all places.
func (r *Route) TotalImportance() int {
	total := 0
	for _, p := range r.Places {
		total += p.Importance
	}
	return total
}

// Count returns the number of places in the route.
func (r *Route) Count() int {
	return len(r.Places)
}

// Render produces the human-readable route report: a summary line followed
// by one entry per place in insertion order, the final entry unterminated.
// Rendering is pure; writing the text anywhere is the caller's concern.
func (r *Route) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total time: %s; Total value: %d; Places visited: %d\n",
		formatHours(r.TotalTime()), r.TotalImportance(), r.Count())

	for i, p := range r.Places {
		fmt.Fprintf(&b, " - %s (%sh, %d)", p.Name, formatHours(p.Duration), p.Importance)
		if i != len(r.Places)-1 {
			b.WriteString(", \n")
		}
	}

	return b.String()
}

// formatHours renders an hour count in shortest round-trip form
// (29 -> "29", 31.5 -> "31.5").
func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
