package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grouping-service/api"
)

// stubServer отвечает заготовками и запоминает разобранные параметры.
type stubServer struct {
	tournamentID string
	teamID       string
	categoryID   *string
	poolName     *string
}

func (s *stubServer) CloseEditorSession(ctx echo.Context, sessionId string) error {
	return ctx.NoContent(http.StatusNoContent)
}

func (s *stubServer) GetEditorSession(ctx echo.Context, sessionId string) error {
	return ctx.JSON(http.StatusNotFound, notFound("editor session not found"))
}

func (s *stubServer) EndDrag(ctx echo.Context, sessionId string) error {
	return ctx.NoContent(http.StatusNotImplemented)
}

func (s *stubServer) StartDrag(ctx echo.Context, sessionId string) error {
	return ctx.NoContent(http.StatusNotImplemented)
}

func (s *stubServer) GetGroupingBoard(ctx echo.Context, tournamentId string, params api.GetGroupingBoardParams) error {
	return ctx.NoContent(http.StatusNotImplemented)
}

func (s *stubServer) DropTeam(ctx echo.Context, tournamentId string) error {
	return ctx.NoContent(http.StatusNotImplemented)
}

func (s *stubServer) OpenEditorSession(ctx echo.Context, tournamentId string) error {
	return ctx.NoContent(http.StatusNotImplemented)
}

func (s *stubServer) ListStages(ctx echo.Context, tournamentId string, params api.ListStagesParams) error {
	return ctx.NoContent(http.StatusNotImplemented)
}

func (s *stubServer) GeneratePools(ctx echo.Context, tournamentId string) error {
	return ctx.NoContent(http.StatusNotImplemented)
}

func (s *stubServer) ListTeams(ctx echo.Context, tournamentId string, params api.ListTeamsParams) error {
	s.tournamentID = tournamentId
	s.categoryID = params.CategoryId
	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"teams": []api.Team{{TeamId: "t1", TeamName: "Lions", TournamentId: tournamentId}},
	})
}

func (s *stubServer) RegisterTeam(ctx echo.Context, tournamentId string) error {
	return ctx.NoContent(http.StatusNotImplemented)
}

func (s *stubServer) AssignTeamPool(ctx echo.Context, tournamentId string, teamId string) error {
	var body api.AssignTeamPoolJSONBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	s.tournamentID = tournamentId
	s.teamID = teamId
	s.poolName = body.PoolName
	return ctx.JSON(http.StatusOK, api.Team{TeamId: teamId, TournamentId: tournamentId, PoolNumber: body.PoolName})
}

func notFound(message string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = api.NOTFOUND
	resp.Error.Message = message
	return resp
}

func newRoundTrip(t *testing.T) (*stubServer, *api.ClientWithResponses) {
	t.Helper()
	stub := &stubServer{}
	e := echo.New()
	api.RegisterHandlers(e, stub)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	c, err := api.NewClientWithResponses(srv.URL)
	require.NoError(t, err)
	return stub, c
}

func TestRegisterHandlers_AllRoutes(t *testing.T) {
	e := echo.New()
	api.RegisterHandlers(e, &stubServer{})

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"DELETE /api/v1/grouping/sessions/:sessionId",
		"GET /api/v1/grouping/sessions/:sessionId",
		"POST /api/v1/grouping/sessions/:sessionId/drag-end",
		"POST /api/v1/grouping/sessions/:sessionId/drag-start",
		"GET /api/v1/tournaments/:tournamentId/grouping",
		"POST /api/v1/tournaments/:tournamentId/grouping/drop",
		"POST /api/v1/tournaments/:tournamentId/grouping/sessions",
		"GET /api/v1/tournaments/:tournamentId/stages",
		"POST /api/v1/tournaments/:tournamentId/stages/pools",
		"GET /api/v1/tournaments/:tournamentId/teams",
		"POST /api/v1/tournaments/:tournamentId/teams",
		"PUT /api/v1/tournaments/:tournamentId/teams/:teamId/pool",
	}
	for _, route := range expected {
		assert.True(t, registered[route], route)
	}
}

func TestClient_ListTeams_RoundTrip(t *testing.T) {
	stub, c := newRoundTrip(t)
	category := "cat 1"

	resp, err := c.ListTeamsWithResponse(context.Background(), "tour 1", &api.ListTeamsParams{CategoryId: &category})

	require.NoError(t, err)
	require.NotNil(t, resp.JSON200)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, resp.JSON200.Teams, 1)
	assert.Equal(t, "Lions", resp.JSON200.Teams[0].TeamName)
	assert.Equal(t, "tour 1", stub.tournamentID)
	require.NotNil(t, stub.categoryID)
	assert.Equal(t, "cat 1", *stub.categoryID)
}

func TestClient_AssignTeamPool_NullPool(t *testing.T) {
	stub, c := newRoundTrip(t)
	stub.poolName = new(string)

	resp, err := c.AssignTeamPoolWithResponse(context.Background(), "tour-1", "t1", api.AssignTeamPoolJSONRequestBody{PoolName: nil})

	require.NoError(t, err)
	require.NotNil(t, resp.JSON200)
	assert.Equal(t, "t1", stub.teamID)
	assert.Nil(t, stub.poolName)
	assert.Nil(t, resp.JSON200.PoolNumber)
}

func TestClient_DefaultErrorResponse(t *testing.T) {
	_, c := newRoundTrip(t)

	resp, err := c.GetEditorSessionWithResponse(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, resp.JSON200)
	require.NotNil(t, resp.JSONDefault)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.Equal(t, api.NOTFOUND, resp.JSONDefault.Error.Code)
}

func TestClient_NoContent(t *testing.T) {
	_, c := newRoundTrip(t)

	resp, err := c.CloseEditorSessionWithResponse(context.Background(), "s-1")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Nil(t, resp.JSONDefault)
}
