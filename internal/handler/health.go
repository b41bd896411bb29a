package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Index answers the API banner at the root path.
func Index(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "CineManager API",
		"version":   "1.0",
		"descricao": "Sistema de Gestão de Cinema",
	})
}

// Health is the liveness endpoint used by load balancers and monitoring.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
