package handler

import (
	"net/http"

	"grouping-service/api"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// SessionHandler обрабатывает сессии редактора групп
type SessionHandler struct {
	*BaseHandler
	sessionService EditorSessionService
}

// NewSessionHandler создает новый экземпляр SessionHandler
func NewSessionHandler(sessionService EditorSessionService, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    NewBaseHandler(logger),
		sessionService: sessionService,
	}
}

// OpenEditorSession открывает сессию редактора
func (h *SessionHandler) OpenEditorSession(c echo.Context, tournamentId string) error {
	logEntry := h.logRequest(c, "open_session").WithField("tournament_id", tournamentId)

	var req api.OpenEditorSessionJSONRequestBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	readOnly := req.ReadOnly != nil && *req.ReadOnly
	state, err := h.sessionService.Open(c.Request().Context(), tournamentId, derefString(req.CategoryId), readOnly)
	if err != nil {
		logEntry.WithError(err).Error("Failed to open session")
		return respondError(c, err)
	}

	logEntry.WithField("session_id", state.SessionID).Info("Session opened")
	return c.JSON(http.StatusCreated, toAPISession(state))
}

// GetEditorSession возвращает состояние сессии
func (h *SessionHandler) GetEditorSession(c echo.Context, sessionId string) error {
	logEntry := h.logRequest(c, "get_session").WithField("session_id", sessionId)

	state, err := h.sessionService.Board(c.Request().Context(), sessionId)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get session")
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toAPISession(state))
}

// StartDrag берет карточку команды
func (h *SessionHandler) StartDrag(c echo.Context, sessionId string) error {
	logEntry := h.logRequest(c, "drag_start").WithField("session_id", sessionId)

	var req api.StartDragJSONRequestBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	started, state, err := h.sessionService.BeginDrag(c.Request().Context(), sessionId, req.TeamId)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to start drag")
		return respondError(c, err)
	}

	logEntry.WithFields(logrus.Fields{
		"team_id": req.TeamId,
		"started": started,
	}).Info("Drag start handled")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"started": started,
		"session": toAPISession(state),
	})
}

// EndDrag отпускает карточку. Пустой container_id отменяет перетаскивание
func (h *SessionHandler) EndDrag(c echo.Context, sessionId string) error {
	logEntry := h.logRequest(c, "drag_end").WithField("session_id", sessionId)

	var req api.EndDragJSONRequestBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	outcome, state, err := h.sessionService.EndDrag(c.Request().Context(), sessionId, req.ContainerId)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to end drag")
		return respondError(c, err)
	}

	logEntry.WithFields(logrus.Fields{
		"container_id": derefString(req.ContainerId),
		"outcome":      outcome.String(),
	}).Info("Drag end handled")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"outcome": outcome.String(),
		"session": toAPISession(state),
	})
}

// CloseEditorSession закрывает сессию
func (h *SessionHandler) CloseEditorSession(c echo.Context, sessionId string) error {
	logEntry := h.logRequest(c, "close_session").WithField("session_id", sessionId)

	if err := h.sessionService.Close(sessionId); err != nil {
		logEntry.WithError(err).Warn("Failed to close session")
		return respondError(c, err)
	}

	logEntry.Info("Session closed")
	return c.NoContent(http.StatusNoContent)
}
