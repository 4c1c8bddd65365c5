package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"meteo-api/configs"
	"meteo-api/docs"
	"meteo-api/internal/application/controller"
	"meteo-api/internal/application/middleware"
	"meteo-api/internal/domain/gateway/api"
	"meteo-api/internal/domain/gateway/db"
	"meteo-api/internal/domain/gateway/geo"
	"meteo-api/internal/domain/usecase/health"
	"meteo-api/internal/domain/usecase/station"
	"meteo-api/internal/domain/usecase/weather"
	"meteo-api/internal/infra/openmeteo"
	"meteo-api/pkg/log"
	"meteo-api/pkg/msg"
	"meteo-api/pkg/resource"
)

const shutdownTimeout = 10 * time.Second

// @title Meteo API
// @version 1.0
// @description Weather data by station or coordinates, relayed from Open-Meteo behind the RapidAPI proxy.
// @BasePath /
// @securityDefinitions.apikey RapidAPIProxy
// @in header
// @name x-rapidapi-host
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.SetupErrorHandler(e)
	e.Use(echomw.Recover())
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	docs.SwaggerInfo.BasePath = "/" + strings.Trim(configs.Env.ContextPath, "/")
	root := e.Group(configs.Env.ContextPath)
	root.GET("/swagger/*", echoSwagger.WrapHandler)
	gated := middleware.GatedGroup(root, resource.GetStringSlice("app.gate.headers"))

	// Init Gateways
	stationGateway, err := db.NewMemoryStationGateway(db.DefaultStations())
	if err != nil {
		log.Fatal("Failed to build the station registry", zap.Error(err))
	}

	upstreamConfig := openmeteo.LoadConfig()
	weatherGateway := api.NewWeatherGateway(upstreamConfig.ForecastURL, upstreamConfig.ClimateURL, upstreamConfig.ClientOptions())

	timezoneGateway, err := geo.NewTimezoneGateway()
	if err != nil {
		log.Warn("Timezone data unavailable, forecasts start at the UTC date", zap.Error(err))
		timezoneGateway = geo.UTCTimezoneGateway{}
	}

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(
		db.NewRegistryHealthGateway(stationGateway),
		api.NewUpstreamHealthGateway(upstreamConfig.ForecastURL, upstreamConfig.ClimateURL),
	)
	stationUseCase := station.NewStationUseCase(resource.GetIntOrDefault("app.nearby.limit", 5), stationGateway)
	weatherUseCase := weather.NewWeatherUseCase(weather.Config{
		DefaultForecastDays: resource.GetIntOrDefault("app.forecast.default-days", 7),
		MaxForecastDays:     resource.GetIntOrDefault("app.forecast.max-days", 15),
		ClimateModel:        resource.GetString("app.climate.model"),
		ClimateStartDate:    resource.GetString("app.climate.start-date"),
		ClimateEndDate:      resource.GetString("app.climate.end-date"),
	}, weatherGateway, timezoneGateway)

	// Init Controller
	healthController := controller.NewHealthController(root, healthUseCase)
	weatherController := controller.NewWeatherController(gated, stationUseCase, weatherUseCase)
	stationController := controller.NewStationController(gated, stationUseCase, weatherUseCase)
	pointController := controller.NewPointController(gated, stationUseCase, weatherUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	stationController.InitStationRoutes()
	pointController.InitPointRoutes()

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", configs.Env.ApplicationName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping", configs.Env.ApplicationName))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", configs.Env.ApplicationName))
}
