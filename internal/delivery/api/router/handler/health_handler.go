package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

// Ping answers liveness probes.
func Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"msg": "pong"})
}
