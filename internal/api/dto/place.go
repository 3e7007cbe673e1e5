package dto

type PlaceResponse struct {
	Name          string  `json:"name"`
	DurationHours float64 `json:"duration_hours"`
	Importance    int     `json:"importance"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}
