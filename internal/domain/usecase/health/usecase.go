package health

import "meteo-api/internal/domain/model"

type UseCase interface {
	// Ping answers the liveness probe
	Ping() model.PingResponse

	// CheckHealth aggregates the registry and upstream components
	CheckHealth() model.HealthResponse
}
