package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"meteo-api/internal/domain/usecase/station"
	"meteo-api/internal/domain/usecase/weather"
)

type WeatherController struct {
	api            *echo.Group
	stationUseCase station.UseCase
	weatherUseCase weather.UseCase
}

func NewWeatherController(api *echo.Group, stationUseCase station.UseCase, weatherUseCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, stationUseCase: stationUseCase, weatherUseCase: weatherUseCase}
}

// InitWeatherRoutes initializes the time-scoped weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/current", controller.Current)
	controller.api.GET("/history", controller.History)
	controller.api.GET("/forecast", controller.Forecast)
}

// Current godoc
// @Summary Current conditions
// @Description Latest hourly slot of temperature, precipitation, relative humidity and wind speed, flattened into one object
// @Tags weather
// @Produce json
// @Security RapidAPIProxy
// @Param station query string false "Station identifier, takes precedence over lat/lon"
// @Param lat query number false "Latitude in degrees"
// @Param lon query number false "Longitude in degrees"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Missing or invalid parameters"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 404 {object} map[string]string "Unknown station"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /current [get]
func (controller *WeatherController) Current(c echo.Context) error {
	coordinate, err := stationOrCoordinates(c, controller.stationUseCase)
	if err != nil {
		return errorResponse(c, err)
	}

	current, err := controller.weatherUseCase.Current(c.Request().Context(), coordinate)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, current)
}

// History godoc
// @Summary Daily summary of a past date
// @Tags weather
// @Produce json
// @Security RapidAPIProxy
// @Param station query string false "Station identifier, takes precedence over lat/lon"
// @Param lat query number false "Latitude in degrees"
// @Param lon query number false "Longitude in degrees"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Provider response"
// @Failure 400 {object} map[string]string "Missing or invalid parameters"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 404 {object} map[string]string "Unknown station"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /history [get]
func (controller *WeatherController) History(c echo.Context) error {
	coordinate, err := stationOrCoordinates(c, controller.stationUseCase)
	if err != nil {
		return errorResponse(c, err)
	}

	history, err := controller.weatherUseCase.History(c.Request().Context(), coordinate, c.QueryParam("date"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, history)
}

// Forecast godoc
// @Summary Daily forecast
// @Description Daily summary from today (local date of the point) to today + days
// @Tags weather
// @Produce json
// @Security RapidAPIProxy
// @Param station query string false "Station identifier, takes precedence over lat/lon"
// @Param lat query number false "Latitude in degrees"
// @Param lon query number false "Longitude in degrees"
// @Param days query int false "Number of days" default(7) minimum(1) maximum(15)
// @Success 200 {object} map[string]interface{} "Provider response"
// @Failure 400 {object} map[string]string "Missing or invalid parameters"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 404 {object} map[string]string "Unknown station"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /forecast [get]
func (controller *WeatherController) Forecast(c echo.Context) error {
	coordinate, err := stationOrCoordinates(c, controller.stationUseCase)
	if err != nil {
		return errorResponse(c, err)
	}

	days, err := intQueryParam(c, "days")
	if err != nil {
		return errorResponse(c, err)
	}

	forecast, err := controller.weatherUseCase.Forecast(c.Request().Context(), coordinate, days)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, forecast)
}
