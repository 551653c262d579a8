package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health reports liveness for load balancers and manual checks.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "OK",
		"message":   "Mentor Booking API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Root serves a small welcome document listing the API surface.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome to Mentor Booking API",
		"version": "1.0.0",
		"endpoints": echo.Map{
			"mentors":  "/api/mentors",
			"sessions": "/api/sessions",
			"bookings": "/api/bookings",
			"health":   "/health",
		},
	})
}
