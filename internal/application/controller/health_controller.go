package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"meteo-api/internal/domain/model"
	"meteo-api/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes the ungated probe routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/ping", controller.Ping)
	controller.api.GET("/health", controller.CheckHealth)
}

// Ping godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} model.PingResponse
// @Router /ping [get]
func (controller *HealthController) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Ping())
}

// CheckHealth godoc
// @Summary Component health
// @Description Station registry and weather provider status
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Failure 503 {object} model.HealthResponse
// @Router /health [get]
func (controller *HealthController) CheckHealth(c echo.Context) error {
	healthResponse := controller.useCase.CheckHealth()

	status := http.StatusOK
	if healthResponse.Status != model.StatusUp {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, healthResponse)
}
