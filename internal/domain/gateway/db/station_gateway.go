package db

import "meteo-api/internal/domain/entity"

// StationGateway gives read access to the station registry
type StationGateway interface {
	// FindAll returns every station in registry order
	FindAll() []entity.Station

	// FindByCountry returns the stations whose country code equals country, in registry order
	FindByCountry(country string) []entity.Station

	// FindByID returns the station with the given identifier
	FindByID(id string) (entity.Station, bool)

	// Count returns the number of registered stations
	Count() int
}
