package handler

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Служебные пути не пишутся в лог: их опрашивают пробы и Prometheus.
var silentPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// LoggingMiddleware добавляет структурированное логирование запросов к API.
// Запросы редактора групп идут часто (каждый перенос карточки), поэтому
// успешные ответы пишутся на уровне Debug.
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := silentPaths[c.Request().URL.Path]; ok {
				return next(c)
			}

			start := time.Now()

			err := next(c)
			if err != nil {
				// Ответ пишет echo, статус известен только после этого
				c.Error(err)
			}

			status := c.Response().Status
			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"route":      c.Path(),
				"status":     status,
				"latency":    time.Since(start),
				"request_id": requestID(c),
				"ip":         c.RealIP(),
			})
			if tournamentID := c.Param("tournamentId"); tournamentID != "" {
				entry = entry.WithField("tournament_id", tournamentID)
			}

			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			switch {
			case status >= 500:
				entry.Error("Server error")
			case status >= 400:
				entry.Warn("Client error")
			case isGroupingRoute(c.Path()):
				entry.Debug("Request processed")
			default:
				entry.Info("Request processed")
			}

			return nil
		}
	}
}

func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

func isGroupingRoute(route string) bool {
	return strings.Contains(route, "/grouping")
}
