package weather

import (
	"context"

	"meteo-api/internal/domain/entity"
	"meteo-api/internal/domain/model"
	"meteo-api/internal/domain/model/external"
)

type UseCase interface {
	// Current returns the most recent hourly slot flattened into a single object
	Current(ctx context.Context, coordinate entity.Coordinate) (model.CurrentConditions, error)

	// History returns the daily summary of a single past date (YYYY-MM-DD)
	History(ctx context.Context, coordinate entity.Coordinate, date string) (external.OpenMeteoPayload, error)

	// Forecast returns the daily summary from today to today + days; nil days uses the configured default
	Forecast(ctx context.Context, coordinate entity.Coordinate, days *int) (external.OpenMeteoPayload, error)

	// Hourly returns the provider hourly series
	Hourly(ctx context.Context, coordinate entity.Coordinate) (external.OpenMeteoPayload, error)

	// Daily returns the provider daily series
	Daily(ctx context.Context, coordinate entity.Coordinate) (external.OpenMeteoPayload, error)

	// Monthly returns the daily series too; the provider has no monthly granularity
	Monthly(ctx context.Context, coordinate entity.Coordinate) (external.OpenMeteoPayload, error)

	// Climate returns the 1991-2020 normals, or a model.SoftFailResponse when the provider has no data for the point
	Climate(ctx context.Context, coordinate entity.Coordinate) (any, error)
}
