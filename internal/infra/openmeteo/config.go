package openmeteo

import (
	"time"

	"meteo-api/pkg/http"
	"meteo-api/pkg/resource"
)

// Config is the upstream section of application.yml
type Config struct {
	ForecastURL       string
	ClimateURL        string
	Timeout           time.Duration
	ConnectionTimeout time.Duration
}

func LoadConfig() Config {
	return Config{
		ForecastURL:       resource.GetString("app.upstream.forecast-url"),
		ClimateURL:        resource.GetString("app.upstream.climate-url"),
		Timeout:           resource.GetDurationOrDefault("app.upstream.timeout", 10*time.Second),
		ConnectionTimeout: resource.GetDurationOrDefault("app.upstream.connection-timeout", 5*time.Second),
	}
}

// ClientOptions builds the options shared by the forecast and climate clients
func (c Config) ClientOptions() http.ClientOptions {
	return http.ClientOptions{
		DefaultHeaders:    map[string]string{"Accept": "application/json"},
		ConnectionTimeout: c.ConnectionTimeout,
		ReadTimeout:       c.Timeout,
		Logger:            NewZapHTTPLogger(),
	}
}
