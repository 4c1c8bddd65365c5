package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"meteo-api/pkg/http"
	"meteo-api/pkg/log"
)

type forecastResponse struct {
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Timezone  string            `json:"timezone"`
	Daily     map[string][]any  `json:"daily"`
	Units     map[string]string `json:"daily_units"`
}

type apiErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// Calls the provider directly, the same way the weather gateway does
func main() {
	defer log.Sync()

	clientOptions := http.ClientOptions{
		DefaultHeaders: map[string]string{"Accept": "application/json"},
		ReadTimeout:    10 * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Daily forecast for Paris
	client := http.NewHttpClient("https://api.open-meteo.com", clientOptions)
	success, failure, status, err := client.Get(ctx, "/v1/forecast", map[string]string{
		"latitude":  "48.8566",
		"longitude": "2.3522",
		"daily":     "temperature_2m_max,temperature_2m_min",
		"timezone":  "auto",
	}, &forecastResponse{}, &apiErrorResponse{})

	if err != nil {
		log.Error("Request Error", zap.Int("status", status), zap.Error(err), zap.Any("body", failure))
	} else {
		log.Infow("Request Success", "status", status, "body", success)
	}

	// Climate normals far outside the model grid: the provider answers 400 with a reason
	climateClient := http.NewHttpClient("https://climate-api.open-meteo.com", clientOptions)
	success, failure, status, err = climateClient.Request().
		WithContext(ctx).
		WithPath("/v1/climate").
		WithQueryParams(map[string]string{
			"latitude":   "-89.9",
			"longitude":  "0",
			"start_date": "1991-01-01",
			"end_date":   "2020-12-31",
			"models":     "ERA5",
			"daily":      "temperature_2m_mean",
		}).
		WithSuccessResp(&forecastResponse{}).
		WithErrorResp(&apiErrorResponse{}).
		Execute()

	if err != nil {
		log.Error("Request Error", zap.Int("status", status), zap.Error(err), zap.Any("body", failure))
	} else {
		log.Infow("Request Success", "status", status, "body", success)
	}
}
