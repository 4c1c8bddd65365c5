package controller

import (
	"strings"

	"github.com/labstack/echo/v4"

	"meteo-api/internal/domain/entity"
	"meteo-api/internal/domain/model"
	"meteo-api/internal/domain/usecase/station"
	"meteo-api/pkg/util/numberutils"
)

func floatQueryParam(c echo.Context, name string) (*float64, error) {
	value, err := numberutils.ToOptionalFloat64(c.QueryParam(name))
	if err != nil {
		return nil, model.NewInvalidParameter(name, "expected a number")
	}
	return value, nil
}

func intQueryParam(c echo.Context, name string) (*int, error) {
	value, err := numberutils.ToOptionalInt(c.QueryParam(name))
	if err != nil {
		return nil, model.NewInvalidParameter(name, "expected an integer")
	}
	return value, nil
}

// stationOrCoordinates resolves ?station= or ?lat=&lon=; lat and lon are not parsed when a station is given
func stationOrCoordinates(c echo.Context, useCase station.UseCase) (entity.Coordinate, error) {
	stationID := strings.TrimSpace(c.QueryParam("station"))
	if stationID != "" {
		return useCase.ResolveCoordinates(stationID, nil, nil)
	}

	lat, err := floatQueryParam(c, "lat")
	if err != nil {
		return entity.Coordinate{}, err
	}
	lon, err := floatQueryParam(c, "lon")
	if err != nil {
		return entity.Coordinate{}, err
	}
	return useCase.ResolveCoordinates("", lat, lon)
}

// requiredStation resolves the mandatory ?station= parameter
func requiredStation(c echo.Context, useCase station.UseCase) (entity.Coordinate, error) {
	stationID := strings.TrimSpace(c.QueryParam("station"))
	if stationID == "" {
		return entity.Coordinate{}, model.NewMissingParameter("station")
	}
	return useCase.ResolveCoordinates(stationID, nil, nil)
}

// requiredCoordinates resolves the mandatory ?lat=&lon= parameters
func requiredCoordinates(c echo.Context, useCase station.UseCase) (entity.Coordinate, error) {
	lat, err := floatQueryParam(c, "lat")
	if err != nil {
		return entity.Coordinate{}, err
	}
	if lat == nil {
		return entity.Coordinate{}, model.NewMissingParameter("lat")
	}

	lon, err := floatQueryParam(c, "lon")
	if err != nil {
		return entity.Coordinate{}, err
	}
	if lon == nil {
		return entity.Coordinate{}, model.NewMissingParameter("lon")
	}

	return useCase.ResolveCoordinates("", lat, lon)
}
