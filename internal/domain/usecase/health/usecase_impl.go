package health

import (
	"meteo-api/internal/domain/gateway/api"
	"meteo-api/internal/domain/gateway/db"
	"meteo-api/internal/domain/model"
)

const pingStatus = "ok"

type healthUseCase struct {
	dbGateway  db.HealthDBGateway
	apiGateway api.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, apiGateway api.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:  dbGateway,
		apiGateway: apiGateway,
	}
}

func (useCase *healthUseCase) Ping() model.PingResponse {
	return model.PingResponse{Status: pingStatus}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	registryHealth := useCase.dbGateway.Health()
	upstreamHealth := useCase.apiGateway.Health()

	overallStatus := model.StatusUp
	if registryHealth.Status != model.StatusUp || upstreamHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Registry: registryHealth,
		Upstream: upstreamHealth,
	}
}
