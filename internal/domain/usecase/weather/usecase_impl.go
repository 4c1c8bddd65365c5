package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"meteo-api/internal/domain/entity"
	"meteo-api/internal/domain/gateway/api"
	"meteo-api/internal/domain/gateway/geo"
	"meteo-api/internal/domain/model"
	"meteo-api/internal/domain/model/external"
	"meteo-api/pkg/log"
	"meteo-api/pkg/msg"
	"meteo-api/pkg/util/numberutils"
)

// Config holds the tunable parts of the provider queries
type Config struct {
	DefaultForecastDays int
	MaxForecastDays     int
	ClimateModel        string
	ClimateStartDate    string
	ClimateEndDate      string
	// Now is the clock used for the forecast window, time.Now when nil
	Now func() time.Time
}

type weatherUseCase struct {
	config          Config
	apiGateway      api.WeatherGateway
	timezoneGateway geo.TimezoneGateway
}

func NewWeatherUseCase(config Config, apiGateway api.WeatherGateway, timezoneGateway geo.TimezoneGateway) UseCase {
	if config.Now == nil {
		config.Now = time.Now
	}
	if timezoneGateway == nil {
		timezoneGateway = geo.UTCTimezoneGateway{}
	}

	return &weatherUseCase{
		config:          config,
		apiGateway:      apiGateway,
		timezoneGateway: timezoneGateway,
	}
}

func (uc *weatherUseCase) Current(ctx context.Context, coordinate entity.Coordinate) (model.CurrentConditions, error) {
	payload, err := uc.apiGateway.GetForecast(ctx, model.WeatherQuery{
		Coordinate: coordinate,
		Hourly:     hourlyVariables,
		Timezone:   timezoneAuto,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get current conditions for %s: %w", coordinate, err)
	}

	current, err := latestHourlySlot(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to read current conditions for %s: %w", coordinate, err)
	}
	return current, nil
}

// latestHourlySlot picks the last element of every hourly series
func latestHourlySlot(payload external.OpenMeteoPayload) (model.CurrentConditions, error) {
	hourly, ok := payload["hourly"].(map[string]any)
	if !ok || len(hourly) == 0 {
		return nil, fmt.Errorf("%w: response has no hourly series", model.ErrBadGateway)
	}

	current := make(model.CurrentConditions, len(hourly))
	for variable, rawSeries := range hourly {
		series, ok := rawSeries.([]any)
		if !ok || len(series) == 0 {
			return nil, fmt.Errorf("%w: hourly series %q is empty", model.ErrBadGateway, variable)
		}
		current[variable] = series[len(series)-1]
	}
	return current, nil
}

func (uc *weatherUseCase) History(ctx context.Context, coordinate entity.Coordinate, date string) (external.OpenMeteoPayload, error) {
	if date == "" {
		return nil, model.NewMissingParameter("date")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, model.NewInvalidParameter("date", "expected YYYY-MM-DD")
	}

	payload, err := uc.apiGateway.GetForecast(ctx, model.WeatherQuery{
		Coordinate: coordinate,
		Daily:      summaryVariables,
		StartDate:  date,
		EndDate:    date,
		Timezone:   timezoneAuto,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get history for %s on %s: %w", coordinate, date, err)
	}
	return payload, nil
}

func (uc *weatherUseCase) Forecast(ctx context.Context, coordinate entity.Coordinate, days *int) (external.OpenMeteoPayload, error) {
	forecastDays := uc.config.DefaultForecastDays
	if days != nil {
		forecastDays = *days
	}
	if !numberutils.IsIntInRange(forecastDays, 1, uc.config.MaxForecastDays) {
		return nil, model.NewInvalidParameter("days", "expected 1 to "+strconv.Itoa(uc.config.MaxForecastDays))
	}

	today := uc.localToday(coordinate)
	query := model.WeatherQuery{
		Coordinate: coordinate,
		Daily:      summaryVariables,
		StartDate:  today.Format(dateLayout),
		EndDate:    today.AddDate(0, 0, forecastDays).Format(dateLayout),
		Timezone:   timezoneAuto,
	}

	payload, err := uc.apiGateway.GetForecast(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get %d day forecast for %s: %w", forecastDays, coordinate, err)
	}
	return payload, nil
}

// localToday returns the current date at the coordinate, falling back to UTC
func (uc *weatherUseCase) localToday(coordinate entity.Coordinate) time.Time {
	now := uc.config.Now()

	location, err := uc.timezoneGateway.Location(coordinate.Latitude, coordinate.Longitude)
	if err != nil {
		log.Debug("Timezone lookup failed, using UTC", zap.Stringer("coordinate", coordinate), zap.Error(err))
		return now.UTC()
	}
	return now.In(location)
}

func (uc *weatherUseCase) Hourly(ctx context.Context, coordinate entity.Coordinate) (external.OpenMeteoPayload, error) {
	return uc.forecast(ctx, "hourly", model.WeatherQuery{
		Coordinate: coordinate,
		Hourly:     hourlyVariables,
		Timezone:   timezoneAuto,
	})
}

func (uc *weatherUseCase) Daily(ctx context.Context, coordinate entity.Coordinate) (external.OpenMeteoPayload, error) {
	return uc.forecast(ctx, "daily", model.WeatherQuery{
		Coordinate: coordinate,
		Daily:      dailyVariables,
		Timezone:   timezoneAuto,
	})
}

func (uc *weatherUseCase) Monthly(ctx context.Context, coordinate entity.Coordinate) (external.OpenMeteoPayload, error) {
	return uc.forecast(ctx, "monthly", model.WeatherQuery{
		Coordinate: coordinate,
		Daily:      dailyVariables,
		Timezone:   timezoneAuto,
	})
}

func (uc *weatherUseCase) forecast(ctx context.Context, view string, query model.WeatherQuery) (external.OpenMeteoPayload, error) {
	payload, err := uc.apiGateway.GetForecast(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s data for %s: %w", view, query.Coordinate, err)
	}
	return payload, nil
}

func (uc *weatherUseCase) Climate(ctx context.Context, coordinate entity.Coordinate) (any, error) {
	payload, err := uc.apiGateway.GetClimate(ctx, model.WeatherQuery{
		Coordinate: coordinate,
		Daily:      climateVariables,
		StartDate:  uc.config.ClimateStartDate,
		EndDate:    uc.config.ClimateEndDate,
		Models:     uc.config.ClimateModel,
	})
	if err == nil {
		return payload, nil
	}

	var upstreamErr *model.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.StatusCode == http.StatusBadRequest {
		log.Warn("No climate data for coordinate",
			zap.Stringer("coordinate", coordinate),
			zap.String("reason", upstreamErr.Reason))
		return model.SoftFailResponse{Error: true, Reason: msg.GetMessage("upstream.climate-unavailable")}, nil
	}

	return nil, fmt.Errorf("failed to get climate normals for %s: %w", coordinate, err)
}
