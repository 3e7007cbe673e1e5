package dto

type ItineraryRequest struct {
	// Strategy selects a single heuristic; empty means all three.
	Strategy         string   `json:"strategy"`
	VisitWindowHours *float64 `json:"visit_window_hours"`
	RestTimeHours    *float64 `json:"rest_time_hours"`
}

type ItineraryResponse struct {
	Strategy        string          `json:"strategy"`
	TotalTimeHours  float64         `json:"total_time_hours"`
	TotalImportance int             `json:"total_importance"`
	PlacesVisited   int             `json:"places_visited"`
	Places          []PlaceResponse `json:"places"`
}

type ListItinerariesResponse struct {
	Itineraries []ItineraryResponse `json:"itineraries"`
}
