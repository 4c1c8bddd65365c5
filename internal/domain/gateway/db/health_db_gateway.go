package db

import (
	"strconv"

	"meteo-api/internal/domain/model"
)

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}

type registryHealthGateway struct {
	stationGateway StationGateway
}

func NewRegistryHealthGateway(stationGateway StationGateway) HealthDBGateway {
	return &registryHealthGateway{stationGateway: stationGateway}
}

func (gateway *registryHealthGateway) Health() model.ComponentHealthStatus {
	count := gateway.stationGateway.Count()

	status := model.StatusUp
	if count == 0 {
		status = model.StatusDown
	}

	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"stations_count": strconv.Itoa(count),
		},
	}
}
