package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"meteo-api/internal/domain/model"
	"meteo-api/internal/domain/usecase/station"
	"meteo-api/internal/domain/usecase/weather"
	"meteo-api/pkg/msg"
)

type StationController struct {
	api            *echo.Group
	stationUseCase station.UseCase
	weatherUseCase weather.UseCase
}

func NewStationController(api *echo.Group, stationUseCase station.UseCase, weatherUseCase weather.UseCase) *StationController {
	return &StationController{api: api, stationUseCase: stationUseCase, weatherUseCase: weatherUseCase}
}

// InitStationRoutes initializes the station registry and per-station weather routes
func (controller *StationController) InitStationRoutes() {
	controller.api.GET("/stations", controller.ListStations)
	controller.api.GET("/station/meta", controller.Meta)
	controller.api.GET("/station/nearby", controller.Nearby)
	controller.api.GET("/station/search", controller.Search)
	controller.api.GET("/station/hourly", controller.Hourly)
	controller.api.GET("/station/daily", controller.Daily)
	controller.api.GET("/station/monthly", controller.Monthly)
	controller.api.GET("/station/climate", controller.Climate)
}

// ListStations godoc
// @Summary List stations
// @Description Every known station in registry order, optionally filtered by country code
// @Tags station
// @Produce json
// @Security RapidAPIProxy
// @Param country query string false "Country code (exact match)"
// @Success 200 {array} entity.Station
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Router /stations [get]
func (controller *StationController) ListStations(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.stationUseCase.ListStations(c.QueryParam("country")))
}

// Meta godoc
// @Summary Station metadata
// @Tags station
// @Produce json
// @Security RapidAPIProxy
// @Param station query string true "Station identifier"
// @Success 200 {object} entity.Station
// @Failure 400 {object} map[string]string "Missing station"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 404 {object} map[string]string "Unknown station"
// @Router /station/meta [get]
func (controller *StationController) Meta(c echo.Context) error {
	stationID := strings.TrimSpace(c.QueryParam("station"))
	if stationID == "" {
		return errorResponse(c, model.NewMissingParameter("station"))
	}

	found, err := controller.stationUseCase.FindStationByID(stationID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

// Nearby godoc
// @Summary Nearest stations
// @Description The five stations closest to the point by great-circle distance, nearest first
// @Tags station
// @Produce json
// @Security RapidAPIProxy
// @Param lat query number true "Latitude in degrees"
// @Param lon query number true "Longitude in degrees"
// @Success 200 {array} entity.NearbyStation
// @Failure 400 {object} map[string]string "Missing or invalid coordinates"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Router /station/nearby [get]
func (controller *StationController) Nearby(c echo.Context) error {
	coordinate, err := requiredCoordinates(c, controller.stationUseCase)
	if err != nil {
		return errorResponse(c, err)
	}

	nearby, err := controller.stationUseCase.FindNearby(coordinate)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, nearby)
}

// Search godoc
// @Summary Search stations by name
// @Description Case-insensitive substring match on the station name, accents ignored
// @Tags station
// @Produce json
// @Security RapidAPIProxy
// @Param name query string true "Part of the station name"
// @Success 200 {array} entity.Station
// @Failure 400 {object} map[string]string "Missing name"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 404 {object} map[string]string "No matching station"
// @Router /station/search [get]
func (controller *StationController) Search(c echo.Context) error {
	name := c.QueryParam("name")

	stations, err := controller.stationUseCase.SearchStationsByName(name)
	if errors.Is(err, model.ErrStationNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("station.no-match", strings.TrimSpace(name))})
	}
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, stations)
}

// Hourly godoc
// @Summary Hourly series of a station
// @Tags station
// @Produce json
// @Security RapidAPIProxy
// @Param station query string true "Station identifier"
// @Success 200 {object} map[string]interface{} "Provider response"
// @Failure 400 {object} map[string]string "Missing station"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 404 {object} map[string]string "Unknown station"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /station/hourly [get]
func (controller *StationController) Hourly(c echo.Context) error {
	return controller.stationView(c, controller.weatherUseCase.Hourly)
}

// Daily godoc
// @Summary Daily series of a station
// @Tags station
// @Produce json
// @Security RapidAPIProxy
// @Param station query string true "Station identifier"
// @Success 200 {object} map[string]interface{} "Provider response"
// @Failure 400 {object} map[string]string "Missing station"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 404 {object} map[string]string "Unknown station"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /station/daily [get]
func (controller *StationController) Daily(c echo.Context) error {
	return controller.stationView(c, controller.weatherUseCase.Daily)
}

// Monthly godoc
// @Summary Monthly view of a station
// @Description Served from the daily series
// @Tags station
// @Produce json
// @Security RapidAPIProxy
// @Param station query string true "Station identifier"
// @Success 200 {object} map[string]interface{} "Provider response"
// @Failure 400 {object} map[string]string "Missing station"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 404 {object} map[string]string "Unknown station"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /station/monthly [get]
func (controller *StationController) Monthly(c echo.Context) error {
	return controller.stationView(c, controller.weatherUseCase.Monthly)
}

// Climate godoc
// @Summary Climate normals of a station
// @Description 1991-2020 daily normals; a point outside the climate model coverage answers 200 with {"error": true, "reason": ...}
// @Tags station
// @Produce json
// @Security RapidAPIProxy
// @Param station query string true "Station identifier"
// @Success 200 {object} map[string]interface{} "Provider response or model.SoftFailResponse"
// @Failure 400 {object} map[string]string "Missing station"
// @Failure 401 {object} map[string]string "Not called through the proxy"
// @Failure 404 {object} map[string]string "Unknown station"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /station/climate [get]
func (controller *StationController) Climate(c echo.Context) error {
	coordinate, err := requiredStation(c, controller.stationUseCase)
	if err != nil {
		return errorResponse(c, err)
	}

	climate, err := controller.weatherUseCase.Climate(c.Request().Context(), coordinate)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, climate)
}

func (controller *StationController) stationView(c echo.Context, view seriesView) error {
	coordinate, err := requiredStation(c, controller.stationUseCase)
	if err != nil {
		return errorResponse(c, err)
	}
	return renderSeries(c, view, coordinate)
}
