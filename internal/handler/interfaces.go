package handler

import (
	"context"

	"grouping-service/internal/domain"
	"grouping-service/internal/grouping"
	"grouping-service/internal/usecase"
)

// GroupingService - команды, этапы и доска только для чтения.
type GroupingService interface {
	domain.GroupingUseCase
	Board(ctx context.Context, tournamentID, categoryID string) (grouping.Board, error)
}

// AssignmentService - назначение пулов и перетаскивание за один вызов.
type AssignmentService interface {
	domain.PoolAssignmentUseCase
	Drop(ctx context.Context, tournamentID, categoryID, teamID, over string) (grouping.Outcome, error)
}

// EditorSessionService - серверные сессии редактора групп.
type EditorSessionService interface {
	Open(ctx context.Context, tournamentID, categoryID string, readOnly bool) (*usecase.SessionState, error)
	Board(ctx context.Context, sessionID string) (*usecase.SessionState, error)
	BeginDrag(ctx context.Context, sessionID, teamID string) (bool, *usecase.SessionState, error)
	EndDrag(ctx context.Context, sessionID string, over *string) (grouping.Outcome, *usecase.SessionState, error)
	Close(sessionID string) error
}
