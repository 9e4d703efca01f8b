package handler

import (
	"net/http"

	"grouping-service/api"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// GroupingHandler обрабатывает доску распределения без сессии
type GroupingHandler struct {
	*BaseHandler
	groupingService   GroupingService
	assignmentService AssignmentService
}

// NewGroupingHandler создает новый экземпляр GroupingHandler
func NewGroupingHandler(groupingService GroupingService, assignmentService AssignmentService, logger *logrus.Logger) *GroupingHandler {
	return &GroupingHandler{
		BaseHandler:       NewBaseHandler(logger),
		groupingService:   groupingService,
		assignmentService: assignmentService,
	}
}

// GetGroupingBoard возвращает доску только для чтения
func (h *GroupingHandler) GetGroupingBoard(c echo.Context, tournamentId string, params api.GetGroupingBoardParams) error {
	categoryID := derefString(params.CategoryId)
	logEntry := h.logRequest(c, "get_board").WithFields(logrus.Fields{
		"tournament_id": tournamentId,
		"category_id":   categoryID,
	})

	board, err := h.groupingService.Board(c.Request().Context(), tournamentId, categoryID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to build board")
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toAPIBoard(board))
}

// DropTeam переносит команду в контейнер за один запрос
func (h *GroupingHandler) DropTeam(c echo.Context, tournamentId string) error {
	logEntry := h.logRequest(c, "drop_team").WithField("tournament_id", tournamentId)

	var req api.DropTeamJSONRequestBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"team_id":      req.TeamId,
		"container_id": req.ContainerId,
	})

	outcome, err := h.assignmentService.Drop(c.Request().Context(), tournamentId, derefString(req.CategoryId), req.TeamId, req.ContainerId)
	if err != nil {
		logEntry.WithError(err).Error("Failed to drop team")
		return respondError(c, err)
	}

	logEntry.WithField("outcome", outcome.String()).Info("Team dropped")
	return c.JSON(http.StatusOK, api.DropResult{
		Outcome: api.DropResultOutcome(outcome.String()),
	})
}
