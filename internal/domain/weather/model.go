package weather

// Snapshot is a single point-in-time weather reading. Snapshots are built
// fresh per request and never cached.
type Snapshot struct {
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
}

// DefaultSnapshot is substituted by the citizen advisory path when the
// provider is unavailable.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Temperature: 25,
		Humidity:    60,
		Description: "moderate conditions",
	}
}
