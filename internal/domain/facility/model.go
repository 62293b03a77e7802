package facility

// Facility is a named healthcare point of interest returned by a geocoding
// provider. Type is only populated by the radius tag search; the bounding
// box search has no category information.
type Facility struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address string  `json:"address"`
	Type    string  `json:"type,omitempty"`
}
