package api

import (
	"meteo-api/internal/domain/model"
)

// HealthGateway reports the upstream configuration; it never calls the provider
type HealthGateway interface {
	Health() model.ComponentHealthStatus
}

type upstreamHealthGateway struct {
	forecastBaseURL string
	climateBaseURL  string
}

func NewUpstreamHealthGateway(forecastBaseURL string, climateBaseURL string) HealthGateway {
	return &upstreamHealthGateway{
		forecastBaseURL: forecastBaseURL,
		climateBaseURL:  climateBaseURL,
	}
}

func (gateway *upstreamHealthGateway) Health() model.ComponentHealthStatus {
	status := model.StatusUp
	if gateway.forecastBaseURL == "" || gateway.climateBaseURL == "" {
		status = model.StatusDown
	}

	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"forecast_url": gateway.forecastBaseURL,
			"climate_url":  gateway.climateBaseURL,
		},
	}
}
