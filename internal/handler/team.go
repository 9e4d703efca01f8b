package handler

import (
	"net/http"

	"grouping-service/api"
	"grouping-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TeamHandler обрабатывает HTTP-запросы для команд турнира
type TeamHandler struct {
	*BaseHandler
	groupingService   GroupingService
	assignmentService AssignmentService
}

// NewTeamHandler создает новый экземпляр TeamHandler
func NewTeamHandler(groupingService GroupingService, assignmentService AssignmentService, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{
		BaseHandler:       NewBaseHandler(logger),
		groupingService:   groupingService,
		assignmentService: assignmentService,
	}
}

// ListTeams возвращает команды турнира с учетом категории
func (h *TeamHandler) ListTeams(c echo.Context, tournamentId string, params api.ListTeamsParams) error {
	categoryID := derefString(params.CategoryId)
	logEntry := h.logRequest(c, "list_teams").WithFields(logrus.Fields{
		"tournament_id": tournamentId,
		"category_id":   categoryID,
	})

	teams, err := h.groupingService.ListTeams(c.Request().Context(), tournamentId, categoryID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to list teams")
		return respondError(c, err)
	}

	logEntry.WithField("teams_count", len(teams)).Info("Teams listed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"teams": toAPITeams(teams),
	})
}

// RegisterTeam заявляет команду на турнир
func (h *TeamHandler) RegisterTeam(c echo.Context, tournamentId string) error {
	logEntry := h.logRequest(c, "register_team").WithField("tournament_id", tournamentId)

	var req api.RegisterTeamJSONRequestBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithField("team_id", req.TeamId)
	logEntry.Info("Registering team")

	team := &domain.Team{
		ID:                   req.TeamId,
		TournamentID:         tournamentId,
		Name:                 req.TeamName,
		OrganisationName:     derefString(req.OrganisationName),
		Category:             derefString(req.Category),
		TournamentCategoryID: req.CategoryId,
	}

	if err := h.groupingService.RegisterTeam(c.Request().Context(), team); err != nil {
		logEntry.WithError(err).Error("Failed to register team")
		return respondError(c, err)
	}

	logEntry.Info("Team registered successfully")
	return c.JSON(http.StatusCreated, toAPITeam(team))
}

// AssignTeamPool назначает команду в пул или снимает с пула
func (h *TeamHandler) AssignTeamPool(c echo.Context, tournamentId string, teamId string) error {
	logEntry := h.logRequest(c, "assign_pool").WithFields(logrus.Fields{
		"tournament_id": tournamentId,
		"team_id":       teamId,
	})

	var req api.AssignTeamPoolJSONRequestBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithField("pool_name", derefString(req.PoolName))
	logEntry.Info("Assigning pool")

	team, err := h.assignmentService.AssignPool(c.Request().Context(), tournamentId, teamId, req.PoolName)
	if err != nil {
		logEntry.WithError(err).Error("Failed to assign pool")
		return respondError(c, err)
	}

	logEntry.Info("Pool assigned successfully")
	return c.JSON(http.StatusOK, toAPITeam(team))
}
