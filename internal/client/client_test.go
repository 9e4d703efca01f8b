package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grouping-service/api"
	"grouping-service/internal/client"
)

func newServer(t *testing.T, register func(e *echo.Echo)) *client.Client {
	t.Helper()
	e := echo.New()
	register(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	c, err := client.New(srv.URL+"/", time.Second)
	require.NoError(t, err)
	return c
}

func TestClient_ListTeams(t *testing.T) {
	c := newServer(t, func(e *echo.Echo) {
		e.GET("/api/v1/tournaments/:tournamentId/teams", func(ctx echo.Context) error {
			assert.Equal(t, "tour 1", ctx.Param("tournamentId"))
			assert.Equal(t, "cat-1", ctx.QueryParam("categoryId"))
			return ctx.JSON(http.StatusOK, map[string]interface{}{
				"teams": []api.Team{{TeamId: "t1", TeamName: "Lions"}},
			})
		})
	})

	teams, err := c.ListTeams(context.Background(), "tour 1", "cat-1")

	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Lions", teams[0].TeamName)
}

func TestClient_AssignPool_SendsNull(t *testing.T) {
	c := newServer(t, func(e *echo.Echo) {
		e.PUT("/api/v1/tournaments/:tournamentId/teams/:teamId/pool", func(ctx echo.Context) error {
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(ctx.Request().Body).Decode(&body))
			value, present := body["pool_name"]
			assert.True(t, present)
			assert.Nil(t, value)
			return ctx.JSON(http.StatusOK, api.Team{TeamId: ctx.Param("teamId")})
		})
	})

	team, err := c.AssignPool(context.Background(), "tour-1", "t1", nil)

	require.NoError(t, err)
	assert.Equal(t, "t1", team.TeamId)
}

func TestClient_ErrorResponse(t *testing.T) {
	c := newServer(t, func(e *echo.Echo) {
		e.GET("/api/v1/tournaments/:tournamentId/grouping", func(ctx echo.Context) error {
			return ctx.JSON(http.StatusNotFound, map[string]interface{}{
				"error": map[string]string{"code": "NOT_FOUND", "message": "team not found"},
			})
		})
	})

	_, err := c.Board(context.Background(), "tour-1", "")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestClient_GeneratePools(t *testing.T) {
	c := newServer(t, func(e *echo.Echo) {
		e.POST("/api/v1/tournaments/:tournamentId/stages/pools", func(ctx echo.Context) error {
			var body api.GeneratePoolsJSONBody
			require.NoError(t, ctx.Bind(&body))
			require.NotNil(t, body.Count)
			assert.Equal(t, 3, *body.Count)
			assert.Nil(t, body.Names)
			return ctx.JSON(http.StatusCreated, map[string]interface{}{
				"stages": []api.Stage{{Name: "Pool A"}, {Name: "Pool B"}, {Name: "Pool C"}},
			})
		})
	})

	stages, err := c.GeneratePools(context.Background(), "tour-1", "", 3, nil)

	require.NoError(t, err)
	assert.Len(t, stages, 3)
}

func TestClient_RegisterTeam(t *testing.T) {
	c := newServer(t, func(e *echo.Echo) {
		e.POST("/api/v1/tournaments/:tournamentId/teams", func(ctx echo.Context) error {
			var body api.RegisterTeamJSONBody
			require.NoError(t, ctx.Bind(&body))
			assert.Equal(t, "t1", body.TeamId)
			return ctx.JSON(http.StatusCreated, api.Team{TeamId: body.TeamId, TeamName: body.TeamName, TournamentId: ctx.Param("tournamentId")})
		})
	})

	team, err := c.RegisterTeam(context.Background(), "tour-1", api.RegisterTeamJSONRequestBody{TeamId: "t1", TeamName: "Lions"})

	require.NoError(t, err)
	assert.Equal(t, "tour-1", team.TournamentId)
	assert.Equal(t, "Lions", team.TeamName)
}

func TestClient_UnexpectedStatusWithoutBody(t *testing.T) {
	c := newServer(t, func(e *echo.Echo) {
		e.GET("/api/v1/tournaments/:tournamentId/stages", func(ctx echo.Context) error {
			return ctx.NoContent(http.StatusBadGateway)
		})
	})

	_, err := c.ListStages(context.Background(), "tour-1", "cat-1")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, string(api.INTERNALERROR), apiErr.Code)
}
