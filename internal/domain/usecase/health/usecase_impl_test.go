package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meteo-api/internal/domain/entity"
	"meteo-api/internal/domain/gateway/api"
	"meteo-api/internal/domain/gateway/db"
	"meteo-api/internal/domain/model"
)

func TestPing(t *testing.T) {
	uc := NewHealthUseCase(nil, nil)
	assert.Equal(t, model.PingResponse{Status: "ok"}, uc.Ping())
}

func TestCheckHealthUp(t *testing.T) {
	stations, err := db.NewMemoryStationGateway(db.DefaultStations())
	require.NoError(t, err)

	uc := NewHealthUseCase(
		db.NewRegistryHealthGateway(stations),
		api.NewUpstreamHealthGateway("https://api.open-meteo.com", "https://climate-api.open-meteo.com"),
	)

	health := uc.CheckHealth()

	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, model.StatusUp, health.Registry.Status)
	assert.Equal(t, "20", health.Registry.Details["stations_count"])
	assert.Equal(t, "https://climate-api.open-meteo.com", health.Upstream.Details["climate_url"])
}

func TestCheckHealthDownWhenRegistryIsEmpty(t *testing.T) {
	stations, err := db.NewMemoryStationGateway([]entity.Station{})
	require.NoError(t, err)

	uc := NewHealthUseCase(
		db.NewRegistryHealthGateway(stations),
		api.NewUpstreamHealthGateway("https://api.open-meteo.com", "https://climate-api.open-meteo.com"),
	)

	health := uc.CheckHealth()

	assert.Equal(t, model.StatusDown, health.Status)
	assert.Equal(t, model.StatusDown, health.Registry.Status)
	assert.Equal(t, model.StatusUp, health.Upstream.Status)
}
