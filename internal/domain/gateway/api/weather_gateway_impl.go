package api

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"meteo-api/internal/domain/model"
	"meteo-api/internal/domain/model/external"
	"meteo-api/pkg/http"
)

const (
	forecastPath = "/v1/forecast"
	climatePath  = "/v1/climate"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	forecastClient *http.Client
	climateClient  *http.Client
}

// NewWeatherGateway creates a WeatherGateway; Open-Meteo serves forecasts and climate normals from different hosts
func NewWeatherGateway(forecastBaseURL string, climateBaseURL string, clientOptions http.ClientOptions) WeatherGateway {
	return &weatherGatewayImpl{
		forecastClient: http.NewHttpClient(forecastBaseURL, clientOptions),
		climateClient:  http.NewHttpClient(climateBaseURL, clientOptions),
	}
}

func (w *weatherGatewayImpl) GetForecast(ctx context.Context, query model.WeatherQuery) (external.OpenMeteoPayload, error) {
	return w.get(ctx, w.forecastClient, forecastPath, query)
}

func (w *weatherGatewayImpl) GetClimate(ctx context.Context, query model.WeatherQuery) (external.OpenMeteoPayload, error) {
	return w.get(ctx, w.climateClient, climatePath, query)
}

func (w *weatherGatewayImpl) get(ctx context.Context, client *http.Client, path string, query model.WeatherQuery) (external.OpenMeteoPayload, error) {
	successResp, errResp, status, err := client.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(toQueryParams(query)).
		WithSuccessResp(&external.OpenMeteoPayload{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return *successResp.(*external.OpenMeteoPayload), nil
	}

	upstreamErr := &model.UpstreamError{Err: err}

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		upstreamErr.StatusCode = statusErr.StatusCode
	} else if status >= 200 && status < 300 {
		// body could not be decoded
		upstreamErr.StatusCode = status
	}

	if errResp != nil {
		upstreamErr.Reason = errResp.(*external.APIErrorResponse).Reason
	}

	return nil, upstreamErr
}

// toQueryParams renders a WeatherQuery with the Open-Meteo parameter names
func toQueryParams(query model.WeatherQuery) map[string]string {
	params := map[string]string{
		"latitude":  strconv.FormatFloat(query.Coordinate.Latitude, 'f', -1, 64),
		"longitude": strconv.FormatFloat(query.Coordinate.Longitude, 'f', -1, 64),
	}

	optional := map[string]string{
		"hourly":     strings.Join(query.Hourly, ","),
		"daily":      strings.Join(query.Daily, ","),
		"start_date": query.StartDate,
		"end_date":   query.EndDate,
		"timezone":   query.Timezone,
		"models":     query.Models,
	}
	for key, value := range optional {
		if value != "" {
			params[key] = value
		}
	}

	return params
}
