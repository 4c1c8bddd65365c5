package station

import "meteo-api/internal/domain/entity"

type UseCase interface {
	// ListStations returns every station, or only those of country when it is not empty
	ListStations(country string) []entity.Station

	// FindStationByID returns a single station or model.ErrStationNotFound
	FindStationByID(id string) (entity.Station, error)

	// SearchStationsByName returns the stations whose name contains name, ignoring case
	SearchStationsByName(name string) ([]entity.Station, error)

	// ResolveCoordinates returns the station position when stationID is set, else the raw lat/lon
	ResolveCoordinates(stationID string, lat *float64, lon *float64) (entity.Coordinate, error)

	// FindNearby ranks the registry by great-circle distance to coordinate
	FindNearby(coordinate entity.Coordinate) ([]entity.NearbyStation, error)
}
