package controller

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"meteo-api/internal/domain/entity"
	"meteo-api/internal/domain/model/external"
	"meteo-api/internal/domain/usecase/station"
	"meteo-api/internal/domain/usecase/weather"
)

// seriesView is one of the weather.UseCase series lookups
type seriesView func(ctx context.Context, coordinate entity.Coordinate) (external.OpenMeteoPayload, error)

func renderSeries(c echo.Context, view seriesView, coordinate entity.Coordinate) error {
	payload, err := view(c.Request().Context(), coordinate)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, payload)
}

type PointController struct {
	api            *echo.Group
	stationUseCase station.UseCase
	weatherUseCase weather.UseCase
}

func NewPointController(api *echo.Group, stationUseCase station.UseCase, weatherUseCase weather.UseCase) *PointController {
	return &PointController{api: api, stationUseCase: stationUseCase, weatherUseCase: weatherUseCase}
}

// InitPointRoutes initializes the arbitrary coordinate weather routes
func (controller *PointController) InitPointRoutes() {
	controller.api.GET("/point/hourly", controller.Hourly)
	controller.api.GET("/point/daily", controller.Daily)
	controller.api.GET("/point/monthly", controller.Monthly)
	controller.api.GET("/point/climate", controller.Climate)
}

// Hourly godoc
// @Summary Hourly series of a point
// @Tags point
// @Produce json
// @Security RapidAPIProxy
// @Param lat query number true "Latitude in degrees"
// @Param lon query number true "Longitude in degrees"
// @Success 200 {object} map[string]interface{} "Provider response"
// @Failure 400 {object} map[string]string "Missing or invalid coordinates"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /point/hourly [get]
func (controller *PointController) Hourly(c echo.Context) error {
	return controller.pointView(c, controller.weatherUseCase.Hourly)
}

// Daily godoc
// @Summary Daily series of a point
// @Tags point
// @Produce json
// @Security RapidAPIProxy
// @Param lat query number true "Latitude in degrees"
// @Param lon query number true "Longitude in degrees"
// @Success 200 {object} map[string]interface{} "Provider response"
// @Failure 400 {object} map[string]string "Missing or invalid coordinates"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /point/daily [get]
func (controller *PointController) Daily(c echo.Context) error {
	return controller.pointView(c, controller.weatherUseCase.Daily)
}

// Monthly godoc
// @Summary Monthly view of a point
// @Description Served from the daily series
// @Tags point
// @Produce json
// @Security RapidAPIProxy
// @Param lat query number true "Latitude in degrees"
// @Param lon query number true "Longitude in degrees"
// @Success 200 {object} map[string]interface{} "Provider response"
// @Failure 400 {object} map[string]string "Missing or invalid coordinates"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /point/monthly [get]
func (controller *PointController) Monthly(c echo.Context) error {
	return controller.pointView(c, controller.weatherUseCase.Monthly)
}

// Climate godoc
// @Summary Climate normals of a point
// @Description 1991-2020 daily normals; a point outside the climate model coverage answers 200 with {"error": true, "reason": ...}
// @Tags point
// @Produce json
// @Security RapidAPIProxy
// @Param lat query number true "Latitude in degrees"
// @Param lon query number true "Longitude in degrees"
// @Success 200 {object} map[string]interface{} "Provider response or model.SoftFailResponse"
// @Failure 400 {object} map[string]string "Missing or invalid coordinates"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /point/climate [get]
func (controller *PointController) Climate(c echo.Context) error {
	coordinate, err := requiredCoordinates(c, controller.stationUseCase)
	if err != nil {
		return errorResponse(c, err)
	}

	climate, err := controller.weatherUseCase.Climate(c.Request().Context(), coordinate)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, climate)
}

func (controller *PointController) pointView(c echo.Context, view seriesView) error {
	coordinate, err := requiredCoordinates(c, controller.stationUseCase)
	if err != nil {
		return errorResponse(c, err)
	}
	return renderSeries(c, view, coordinate)
}
