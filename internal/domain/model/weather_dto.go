package model

import "meteo-api/internal/domain/entity"

// WeatherQuery is the parameter set of a single provider call.
type WeatherQuery struct {
	Coordinate entity.Coordinate
	Hourly     []string
	Daily      []string
	StartDate  string
	EndDate    string
	Timezone   string
	Models     string
}

// CurrentConditions is the most recent hourly slot flattened into one object.
type CurrentConditions map[string]any

// SoftFailResponse is a successful response body describing a known data gap.
type SoftFailResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
