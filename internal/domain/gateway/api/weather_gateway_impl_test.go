package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meteo-api/internal/domain/entity"
	"meteo-api/internal/domain/model"
	pkghttp "meteo-api/pkg/http"
)

type upstream struct {
	server  *httptest.Server
	path    string
	query   url.Values
	status  int
	payload string
	delay   time.Duration
}

func newUpstream(t *testing.T, status int, payload string) *upstream {
	u := &upstream{status: status, payload: payload}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.path = r.URL.Path
		u.query = r.URL.Query()
		if u.delay > 0 {
			select {
			case <-time.After(u.delay):
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(u.status)
		_, _ = w.Write([]byte(u.payload))
	}))
	t.Cleanup(u.server.Close)
	return u
}

func TestGetForecastSendsQueryAndRelaysPayload(t *testing.T) {
	forecast := newUpstream(t, http.StatusOK, `{"latitude":48.86,"hourly":{"time":["2024-06-10T00:00"],"temperature_2m":[18.2]}}`)
	gateway := NewWeatherGateway(forecast.server.URL, "http://unused.invalid", pkghttp.ClientOptions{})

	payload, err := gateway.GetForecast(context.Background(), model.WeatherQuery{
		Coordinate: entity.Coordinate{Latitude: 48.8566, Longitude: 2.3522},
		Hourly:     []string{"temperature_2m", "precipitation"},
		Timezone:   "auto",
	})

	require.NoError(t, err)
	assert.Equal(t, "/v1/forecast", forecast.path)
	assert.Equal(t, "48.8566", forecast.query.Get("latitude"))
	assert.Equal(t, "2.3522", forecast.query.Get("longitude"))
	assert.Equal(t, "temperature_2m,precipitation", forecast.query.Get("hourly"))
	assert.Equal(t, "auto", forecast.query.Get("timezone"))
	assert.False(t, forecast.query.Has("daily"))
	assert.False(t, forecast.query.Has("models"))

	assert.Equal(t, 48.86, payload["latitude"])
	assert.Contains(t, payload, "hourly")
}

func TestGetClimateUsesClimateHost(t *testing.T) {
	climate := newUpstream(t, http.StatusOK, `{"daily":{"time":[]}}`)
	gateway := NewWeatherGateway("http://unused.invalid", climate.server.URL, pkghttp.ClientOptions{})

	_, err := gateway.GetClimate(context.Background(), model.WeatherQuery{
		Coordinate: entity.Coordinate{Latitude: 45.75, Longitude: 4.85},
		Daily:      []string{"temperature_2m_mean"},
		StartDate:  "1991-01-01",
		EndDate:    "2020-12-31",
		Models:     "ERA5",
	})

	require.NoError(t, err)
	assert.Equal(t, "/v1/climate", climate.path)
	assert.Equal(t, "ERA5", climate.query.Get("models"))
	assert.Equal(t, "1991-01-01", climate.query.Get("start_date"))
	assert.Equal(t, "2020-12-31", climate.query.Get("end_date"))
}

func TestGatewayTranslatesProviderErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		payload    string
		wantStatus int
		wantReason string
	}{
		{name: "bad request with reason", status: http.StatusBadRequest, payload: `{"error":true,"reason":"Latitude must be in range of -90 to 90°."}`, wantStatus: 400, wantReason: "Latitude must be in range of -90 to 90°."},
		{name: "server error", status: http.StatusInternalServerError, payload: `oops`, wantStatus: 500},
		{name: "undecodable success", status: http.StatusOK, payload: `not json`, wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast := newUpstream(t, tt.status, tt.payload)
			gateway := NewWeatherGateway(forecast.server.URL, forecast.server.URL, pkghttp.ClientOptions{})

			_, err := gateway.GetForecast(context.Background(), model.WeatherQuery{})

			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrBadGateway)

			var upstreamErr *model.UpstreamError
			require.True(t, errors.As(err, &upstreamErr))
			assert.Equal(t, tt.wantStatus, upstreamErr.StatusCode)
			assert.Equal(t, tt.wantReason, upstreamErr.Reason)
		})
	}
}

func TestGatewayTimeoutIsBadGateway(t *testing.T) {
	forecast := newUpstream(t, http.StatusOK, `{}`)
	forecast.delay = time.Second
	gateway := NewWeatherGateway(forecast.server.URL, forecast.server.URL, pkghttp.ClientOptions{ReadTimeout: 50 * time.Millisecond})

	_, err := gateway.GetForecast(context.Background(), model.WeatherQuery{})

	assert.ErrorIs(t, err, model.ErrBadGateway)
	var upstreamErr *model.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, 0, upstreamErr.StatusCode)
}

func TestGatewayConnectionRefusedIsBadGateway(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	closedURL := server.URL
	server.Close()

	gateway := NewWeatherGateway(closedURL, closedURL, pkghttp.ClientOptions{})
	_, err := gateway.GetClimate(context.Background(), model.WeatherQuery{})

	assert.ErrorIs(t, err, model.ErrBadGateway)
}
