package controller

import (
	"reciclame-api/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const bodyLimit = "1M"

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, registry *prometheus.Registry) {
	validate := newValidator()

	handler.Pre(middleware.RemoveTrailingSlash())
	handler.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	handler.Use(requestLogger())
	handler.Use(middleware.Recover())
	handler.Use(middleware.CORS())
	handler.Use(middleware.BodyLimit(bodyLimit))
	handler.Use(newHTTPMetrics(registry).middleware)

	handler.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newAuthRoutesHandler(api, services, validate)
	newPessoaRoutesHandler(api, services, validate)
	newEmpresaRoutesHandler(api, services, validate)
	newCooperativaRoutesHandler(api, services, validate)
	newTipoResiduoRoutesHandler(api, services, validate)
	newPontoColetaRoutesHandler(api, services, validate)
	newResiduoRoutesHandler(api, services, validate)
	newColetaRoutesHandler(api, services, validate)
}
