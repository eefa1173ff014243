package rest

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/vibetracker/internal/logging"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// LogHandlerFunc logs one line per request with its outcome and latency.
func LogHandlerFunc(logger logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			begin := time.Now()

			err := next(c)
			if err != nil {
				// status is only final once the error handler has run
				c.Error(err)
			}

			logger.Info(req.Context(), "request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"latency", time.Since(begin),
			)
			return nil
		}
	}
}

// SetLevel maps a textual level to echo's logger.
func SetLevel(e *echo.Echo, level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		e.Logger.SetLevel(log.DEBUG)
	case "info":
		e.Logger.SetLevel(log.INFO)
	case "warn", "warning", "":
		e.Logger.SetLevel(log.WARN)
	case "error":
		e.Logger.SetLevel(log.ERROR)
	case "off":
		e.Logger.SetLevel(log.OFF)
	default:
		e.Logger.SetLevel(log.WARN)
		e.Logger.Warnf("unknown loglevel: %s . fall-backed to warn", level)
	}
}
