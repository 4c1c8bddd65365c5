package station

import (
	"fmt"
	"sort"
	"strings"

	"meteo-api/internal/domain/entity"
	"meteo-api/internal/domain/gateway/db"
	"meteo-api/internal/domain/model"
)

type stationUseCase struct {
	nearbyLimit int
	dbGateway   db.StationGateway
}

func NewStationUseCase(nearbyLimit int, dbGateway db.StationGateway) UseCase {
	return &stationUseCase{
		nearbyLimit: nearbyLimit,
		dbGateway:   dbGateway,
	}
}

func (uc *stationUseCase) ListStations(country string) []entity.Station {
	if country == "" {
		return uc.dbGateway.FindAll()
	}
	return uc.dbGateway.FindByCountry(country)
}

func (uc *stationUseCase) FindStationByID(id string) (entity.Station, error) {
	station, ok := uc.dbGateway.FindByID(id)
	if !ok {
		return entity.Station{}, fmt.Errorf("%w: %s", model.ErrStationNotFound, id)
	}
	return station, nil
}

func (uc *stationUseCase) SearchStationsByName(name string) ([]entity.Station, error) {
	if strings.TrimSpace(name) == "" {
		return nil, model.NewMissingParameter("name")
	}

	needle := strings.ToLower(name)

	matches := make([]entity.Station, 0)
	for _, station := range uc.dbGateway.FindAll() {
		if strings.Contains(strings.ToLower(station.Name), needle) {
			matches = append(matches, station)
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no name matches %q", model.ErrStationNotFound, name)
	}
	return matches, nil
}

func (uc *stationUseCase) ResolveCoordinates(stationID string, lat *float64, lon *float64) (entity.Coordinate, error) {
	if stationID != "" {
		station, err := uc.FindStationByID(stationID)
		if err != nil {
			return entity.Coordinate{}, err
		}
		return station.Coordinate(), nil
	}

	if lat == nil || lon == nil {
		return entity.Coordinate{}, model.ErrMissingParameters
	}

	coordinate := entity.Coordinate{Latitude: *lat, Longitude: *lon}
	if !coordinate.Valid() {
		return entity.Coordinate{}, model.NewInvalidParameter("lat/lon", "out of range "+coordinate.String())
	}
	return coordinate, nil
}

func (uc *stationUseCase) FindNearby(coordinate entity.Coordinate) ([]entity.NearbyStation, error) {
	if !coordinate.Valid() {
		return nil, model.NewInvalidParameter("lat/lon", "out of range "+coordinate.String())
	}

	stations := uc.dbGateway.FindAll()
	ranked := make([]entity.NearbyStation, len(stations))
	for i, station := range stations {
		ranked[i] = entity.NearbyStation{
			Station:    station,
			DistanceKm: HaversineDistance(coordinate, station.Coordinate()),
		}
	}

	// Stable keeps registry order between equidistant stations
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if uc.nearbyLimit > 0 && len(ranked) > uc.nearbyLimit {
		ranked = ranked[:uc.nearbyLimit]
	}
	return ranked, nil
}
