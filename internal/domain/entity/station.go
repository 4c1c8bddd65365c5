package entity

// Station is a fixed weather reference point of the registry.
type Station struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Region  string  `json:"region,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Coordinate returns the station position.
func (s Station) Coordinate() Coordinate {
	return Coordinate{Latitude: s.Lat, Longitude: s.Lon}
}

// NearbyStation is a station ranked by its distance to a query point.
type NearbyStation struct {
	Station
	DistanceKm float64 `json:"distanceKm"`
}
