package handler

import (
	"errors"
	"net/http"

	"grouping-service/api"
	"grouping-service/internal/domain"
	"grouping-service/internal/grouping"
	"grouping-service/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPITeam(team *domain.Team) api.Team {
	var organisation *string
	if team.OrganisationName != "" {
		value := team.OrganisationName
		organisation = &value
	}
	return api.Team{
		TeamId:           team.ID,
		TournamentId:     team.TournamentID,
		TeamName:         team.Name,
		OrganisationName: organisation,
		Category:         team.Category,
		CategoryId:       team.TournamentCategoryID,
		PoolNumber:       team.PoolNumber,
		IsActive:         team.IsActive,
	}
}

func toAPITeams(teams []*domain.Team) []api.Team {
	result := make([]api.Team, len(teams))
	for i, team := range teams {
		result[i] = toAPITeam(team)
	}
	return result
}

func toAPIStages(stages []*domain.Stage) []api.Stage {
	result := make([]api.Stage, len(stages))
	for i, stage := range stages {
		result[i] = api.Stage{
			StageId:      stage.ID,
			TournamentId: stage.TournamentID,
			CategoryId:   stage.CategoryID,
			Name:         stage.Name,
			StageType:    api.StageStageType(stage.StageType),
			DisplayOrder: stage.DisplayOrder,
		}
	}
	return result
}

func toAPICards(cards []grouping.Card) []api.Card {
	result := make([]api.Card, len(cards))
	for i, card := range cards {
		result[i] = toAPICard(card)
	}
	return result
}

func toAPICard(card grouping.Card) api.Card {
	return api.Card{
		TeamId:           card.TeamID,
		TeamName:         card.Name,
		OrganisationName: card.OrganisationName,
		Draggable:        card.Draggable,
		Dimmed:           card.Dimmed,
	}
}

func toAPIContainer(container grouping.Container) api.Container {
	var placeholder *string
	if container.Placeholder != "" {
		value := container.Placeholder
		placeholder = &value
	}
	return api.Container{
		Id:          container.ID,
		Title:       container.Title,
		Badge:       container.Badge,
		Count:       container.Count(),
		Cards:       toAPICards(container.Cards),
		Placeholder: placeholder,
	}
}

func toAPIBoard(board grouping.Board) api.Board {
	pools := make([]api.Container, len(board.Pools))
	for i, pool := range board.Pools {
		pools[i] = toAPIContainer(pool)
	}

	result := api.Board{
		ReadOnly:   board.ReadOnly,
		Unassigned: toAPIContainer(board.Unassigned),
		Pools:      pools,
		Orphaned:   toAPICards(board.Orphaned),
	}
	if board.Overlay != nil {
		overlay := toAPICard(*board.Overlay)
		result.Overlay = &overlay
	}
	return result
}

func toAPISession(state *usecase.SessionState) api.EditorSession {
	session := api.EditorSession{
		SessionId:    state.SessionID,
		TournamentId: state.TournamentID,
		ReadOnly:     state.ReadOnly,
		Board:        toAPIBoard(state.Board),
	}
	if state.CategoryID != "" {
		categoryID := state.CategoryID
		session.CategoryId = &categoryID
	}
	if state.DraggingTeamID != "" {
		teamID := state.DraggingTeamID
		session.DraggingTeamId = &teamID
	}
	return session
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    api.ErrorResponseErrorCode(code),
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

// respondError пишет ответ с ошибкой: доменные ошибки по ErrorMapping,
// остальные как INTERNAL_ERROR.
func respondError(c echo.Context, err error) error {
	if httpErr, exists := domain.ToHTTPError(err); exists {
		return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
	}
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
}

func getHTTPStatusCode(err error) int {
	switch {
	// Conflict errors (409)
	case errors.Is(err, domain.ErrTeamAlreadyExists),
		errors.Is(err, domain.ErrStageAlreadyExists):
		return http.StatusConflict

	// Not Found errors (404)
	case errors.Is(err, domain.ErrTeamNotFound),
		errors.Is(err, domain.ErrStageNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrInvalidTournamentID),
		errors.Is(err, domain.ErrInvalidTeamID),
		errors.Is(err, domain.ErrInvalidTeamName),
		errors.Is(err, domain.ErrInvalidPoolName),
		errors.Is(err, domain.ErrInvalidPoolCount),
		errors.Is(err, domain.ErrInvalidSessionID):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
