package apimiddleware

import (
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/hashicorp/go-uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type RequestLoggerConfig struct {
	Skipper middleware.Skipper
}

// RequestLogger logs one line per request with its method, path, status and
// duration. Each response carries an X-Request-Id header, either propagated
// from the request or generated here.
func RequestLogger(config RequestLoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultRequestLoggerSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				if generated, err := uuid.GenerateUUID(); err == nil {
					requestID = generated
				}
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			started := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.WithFields(log.Fields{
				"method":     c.Request().Method,
				"path":       c.Request().URL.Path,
				"status":     c.Response().Status,
				"duration":   time.Since(started).String(),
				"request_id": requestID,
			}).Info("request")

			return err
		}
	}
}

// DefaultRequestLoggerSkipper skips static assets and health probes.
func DefaultRequestLoggerSkipper(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/static") || path == "/healthz"
}
