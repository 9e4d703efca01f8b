package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grouping-service/internal/handler"
)

func newLoggedEcho(logger *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(handler.LoggingMiddleware(logger))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/api/v1/tournaments/:tournamentId/grouping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/api/v1/tournaments/:tournamentId/teams", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad query")
	})
	return e
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLoggingMiddleware_SkipsServicePaths(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	e := newLoggedEcho(logger)

	rec := serve(e, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, hook.AllEntries())
}

func TestLoggingMiddleware_GroupingRoutesAtDebug(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	e := newLoggedEcho(logger)

	serve(e, "/api/v1/tournaments/t-1/grouping")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "t-1", entry.Data["tournament_id"])
	assert.Equal(t, "/api/v1/tournaments/:tournamentId/grouping", entry.Data["route"])
	assert.NotEmpty(t, entry.Data["request_id"])
}

func TestLoggingMiddleware_ClientErrorStatus(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	e := newLoggedEcho(logger)

	rec := serve(e, "/api/v1/tournaments/t-1/teams")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, http.StatusBadRequest, entry.Data["status"])
	assert.Contains(t, entry.Data["error"], "bad query")
}
