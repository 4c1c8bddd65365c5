package api

import (
	"context"

	"meteo-api/internal/domain/model"
	"meteo-api/internal/domain/model/external"
)

// WeatherGateway defines the calls to the Open-Meteo API
type WeatherGateway interface {
	// GetForecast queries the short-range forecast endpoint (/v1/forecast)
	GetForecast(ctx context.Context, query model.WeatherQuery) (external.OpenMeteoPayload, error)

	// GetClimate queries the long-range climate endpoint (/v1/climate)
	GetClimate(ctx context.Context, query model.WeatherQuery) (external.OpenMeteoPayload, error)
}
