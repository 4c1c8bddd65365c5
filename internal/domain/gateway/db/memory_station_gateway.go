package db

import (
	"fmt"

	"meteo-api/internal/domain/entity"
)

// memoryStationGateway is an immutable catalog built once at startup
type memoryStationGateway struct {
	stations  []entity.Station
	byID      map[string]int
	byCountry map[string][]int
}

// NewMemoryStationGateway builds the catalog from stations, rejecting empty or duplicate identifiers.
func NewMemoryStationGateway(stations []entity.Station) (StationGateway, error) {
	gateway := &memoryStationGateway{
		stations:  make([]entity.Station, len(stations)),
		byID:      make(map[string]int, len(stations)),
		byCountry: make(map[string][]int),
	}
	copy(gateway.stations, stations)

	for i, station := range gateway.stations {
		if station.ID == "" {
			return nil, fmt.Errorf("station at position %d has no id", i)
		}
		if _, exists := gateway.byID[station.ID]; exists {
			return nil, fmt.Errorf("duplicate station id %q", station.ID)
		}
		gateway.byID[station.ID] = i
		gateway.byCountry[station.Country] = append(gateway.byCountry[station.Country], i)
	}

	return gateway, nil
}

func (g *memoryStationGateway) FindAll() []entity.Station {
	result := make([]entity.Station, len(g.stations))
	copy(result, g.stations)
	return result
}

func (g *memoryStationGateway) FindByCountry(country string) []entity.Station {
	indexes := g.byCountry[country]
	result := make([]entity.Station, 0, len(indexes))
	for _, i := range indexes {
		result = append(result, g.stations[i])
	}
	return result
}

func (g *memoryStationGateway) FindByID(id string) (entity.Station, bool) {
	i, exists := g.byID[id]
	if !exists {
		return entity.Station{}, false
	}
	return g.stations[i], true
}

func (g *memoryStationGateway) Count() int {
	return len(g.stations)
}
