package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meteo-api/internal/domain/entity"
)

func TestDefaultStationsHaveUniqueIDsAndValidCoordinates(t *testing.T) {
	gateway, err := NewMemoryStationGateway(DefaultStations())
	require.NoError(t, err)

	assert.Equal(t, len(DefaultStations()), gateway.Count())
	for _, station := range gateway.FindAll() {
		assert.True(t, station.Coordinate().Valid(), station.ID)
		assert.NotEmpty(t, station.Name, station.ID)
		assert.Len(t, station.Country, 2, station.ID)
	}
}

func TestNewMemoryStationGatewayRejectsDuplicates(t *testing.T) {
	_, err := NewMemoryStationGateway([]entity.Station{
		{ID: "A", Name: "One"},
		{ID: "A", Name: "Two"},
	})
	assert.EqualError(t, err, `duplicate station id "A"`)

	_, err = NewMemoryStationGateway([]entity.Station{{Name: "Nameless"}})
	assert.Error(t, err)
}

func TestFindByID(t *testing.T) {
	gateway, err := NewMemoryStationGateway(DefaultStations())
	require.NoError(t, err)

	station, ok := gateway.FindByID("FRPAR")
	require.True(t, ok)
	assert.Equal(t, "Paris", station.Name)
	assert.Equal(t, 48.8566, station.Lat)
	assert.Equal(t, 2.3522, station.Lon)

	_, ok = gateway.FindByID("UNKNOWN")
	assert.False(t, ok)
}

func TestFindByCountryKeepsRegistryOrder(t *testing.T) {
	gateway, err := NewMemoryStationGateway([]entity.Station{
		{ID: "FR1", Country: "FR"},
		{ID: "DE1", Country: "DE"},
		{ID: "FR2", Country: "FR"},
	})
	require.NoError(t, err)

	ids := func(stations []entity.Station) []string {
		var out []string
		for _, s := range stations {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Equal(t, []string{"FR1", "FR2"}, ids(gateway.FindByCountry("FR")))
	assert.Empty(t, gateway.FindByCountry("fr"))
	assert.NotNil(t, gateway.FindByCountry("XX"))
}

func TestFindAllReturnsCopy(t *testing.T) {
	gateway, err := NewMemoryStationGateway(DefaultStations())
	require.NoError(t, err)

	stations := gateway.FindAll()
	stations[0].Name = "Changed"

	station, _ := gateway.FindByID(stations[0].ID)
	assert.Equal(t, "Paris", station.Name)
}
