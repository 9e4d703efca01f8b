package handler

import (
	"net/http"

	"grouping-service/api"
	"grouping-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StageHandler обрабатывает HTTP-запросы для этапов турнира
type StageHandler struct {
	*BaseHandler
	groupingService GroupingService
}

// NewStageHandler создает новый экземпляр StageHandler
func NewStageHandler(groupingService GroupingService, logger *logrus.Logger) *StageHandler {
	return &StageHandler{
		BaseHandler:     NewBaseHandler(logger),
		groupingService: groupingService,
	}
}

// ListStages возвращает этапы турнира
func (h *StageHandler) ListStages(c echo.Context, tournamentId string, params api.ListStagesParams) error {
	categoryID := derefString(params.CategoryId)
	logEntry := h.logRequest(c, "list_stages").WithFields(logrus.Fields{
		"tournament_id": tournamentId,
		"category_id":   categoryID,
	})

	stages, err := h.groupingService.ListStages(c.Request().Context(), tournamentId, categoryID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to list stages")
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"stages": toAPIStages(stages),
	})
}

// GeneratePools создает этапы-пулы
func (h *StageHandler) GeneratePools(c echo.Context, tournamentId string) error {
	logEntry := h.logRequest(c, "generate_pools").WithField("tournament_id", tournamentId)

	var req api.GeneratePoolsJSONRequestBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	genReq := domain.PoolGenerationRequest{
		TournamentID: tournamentId,
		CategoryID:   derefString(req.CategoryId),
	}
	if req.Count != nil {
		genReq.Count = *req.Count
	}
	if req.Names != nil {
		genReq.Names = *req.Names
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"category_id": genReq.CategoryID,
		"count":       genReq.Count,
	})
	logEntry.Info("Generating pools")

	stages, err := h.groupingService.GeneratePools(c.Request().Context(), genReq)
	if err != nil {
		logEntry.WithError(err).Error("Failed to generate pools")
		return respondError(c, err)
	}

	logEntry.WithField("created", len(stages)).Info("Pools generated successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"stages": toAPIStages(stages),
	})
}
