package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"meteo-api/internal/domain/model"
	"meteo-api/pkg/log"
	"meteo-api/pkg/msg"
)

// errorResponse renders err as {"error": message} with the status of its sentinel
func errorResponse(c echo.Context, err error) error {
	status, message := describeError(err)

	if status >= http.StatusInternalServerError {
		log.Error(message,
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Int("status", status),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		)
	}

	return c.JSON(status, map[string]string{"error": message})
}

func describeError(err error) (int, string) {
	var paramErr *model.ParameterError

	switch {
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized, msg.GetMessage("gate.unauthorized")
	case errors.Is(err, model.ErrStationNotFound):
		return http.StatusNotFound, msg.GetMessage("station.not-found")
	case errors.As(err, &paramErr) && errors.Is(err, model.ErrMissingParameters):
		return http.StatusBadRequest, msg.GetMessage("param.missing-one", paramErr.Name)
	case errors.Is(err, model.ErrMissingParameters):
		return http.StatusBadRequest, msg.GetMessage("param.missing")
	case errors.As(err, &paramErr) && errors.Is(err, model.ErrInvalidParameter):
		return http.StatusBadRequest, msg.GetMessage("param.invalid", paramErr.Name, paramErr.Reason)
	case errors.Is(err, model.ErrBadGateway):
		return http.StatusBadGateway, msg.GetMessage("upstream.bad-gateway")
	default:
		return http.StatusInternalServerError, msg.GetMessage("server.internal-error")
	}
}
