package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"mentor-booking-backend/config"
)

// NewHTTPErrorHandler returns the echo error handler. Unmatched routes (and
// mismatched methods) render as a 404 route error; anything else is a store
// or handler fault rendered as a 500 with the detail suppressed outside
// development mode.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.Code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				_ = c.JSON(http.StatusNotFound, echo.Map{
					"error":   "Route not found",
					"message": fmt.Sprintf("Cannot %s %s", c.Request().Method, c.Request().URL.Path),
				})
				return
			default:
				if httpErr.Code < http.StatusInternalServerError {
					_ = c.JSON(httpErr.Code, echo.Map{"error": fmt.Sprintf("%v", httpErr.Message)})
					return
				}
			}
		}

		log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("unhandled error")

		message := "Something went wrong"
		if config.IsDevelopment() {
			message = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Internal server error",
			"message": message,
		})
	}
}
