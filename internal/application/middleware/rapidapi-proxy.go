package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"meteo-api/pkg/msg"
)

// RapidAPIProxy lets a request through when at least one of headers carries a non-empty value.
// With no headers configured every request is rejected.
func RapidAPIProxy(headers []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, header := range headers {
				if strings.TrimSpace(c.Request().Header.Get(header)) != "" {
					return next(c)
				}
			}
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg.GetMessage("gate.unauthorized")})
		}
	}
}

// GatedGroup returns a sub-group of parent behind RapidAPIProxy.
// Paths that match no route keep answering 404 instead of going through the gate.
func GatedGroup(parent *echo.Group, headers []string) *echo.Group {
	gated := parent.Group("", RapidAPIProxy(headers))
	parent.RouteNotFound("", echo.NotFoundHandler)
	parent.RouteNotFound("/*", echo.NotFoundHandler)
	return gated
}
