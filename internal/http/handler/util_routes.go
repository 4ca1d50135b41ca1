package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const apiVersion = "1.0.0"

// Banner describes the running service on the root endpoint.
func Banner(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "OK",
		"message": "Sachify Backend API",
		"version": apiVersion,
		"endpoints": echo.Map{
			"health": "/health",
			"notes":  "/api/notes",
			"search": "/api/notes/search",
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "OK",
		"message":   "Sachify Backend is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
