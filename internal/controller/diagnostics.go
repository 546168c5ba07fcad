package controller

import (
	"net/http"
	"time"

	"reciclame-api/internal/service"

	"github.com/labstack/echo/v4"
)

type diagnosticRoutesHandler struct {
	diagnosticService service.Diagnostics
}

type healthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func newDiagnosticRoutesHandler(outer *echo.Group, services *service.Services) *diagnosticRoutesHandler {
	h := &diagnosticRoutesHandler{services.Diagnostics}
	outer.GET("/ping", h.Ping)
	outer.GET("/health", h.Health)

	return h
}

// Ping checks the database and the cache.
func (h *diagnosticRoutesHandler) Ping(c echo.Context) error {
	err := h.diagnosticService.Ping(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("ping: %v", err)
		if e := c.NoContent(http.StatusInternalServerError); e != nil {
			return e
		}

		return nil
	}
	if e := c.JSON(http.StatusOK, "ok"); e != nil {
		return e
	}

	return nil
}

func (h *diagnosticRoutesHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Success:   true,
		Message:   "Backend Reciclame funcionando!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
