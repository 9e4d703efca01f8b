package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"grouping-service/internal/domain"
	"grouping-service/internal/grouping"
	"grouping-service/internal/mocks"
	"grouping-service/internal/usecase"
)

type groupingServiceMock struct {
	mock.Mock
}

func (m *groupingServiceMock) ListTeams(ctx context.Context, tournamentID, categoryID string) ([]*domain.Team, error) {
	args := m.Called(ctx, tournamentID, categoryID)
	teams, _ := args.Get(0).([]*domain.Team)
	return teams, args.Error(1)
}

func (m *groupingServiceMock) RegisterTeam(ctx context.Context, team *domain.Team) error {
	return m.Called(ctx, team).Error(0)
}

func (m *groupingServiceMock) ListStages(ctx context.Context, tournamentID, categoryID string) ([]*domain.Stage, error) {
	args := m.Called(ctx, tournamentID, categoryID)
	stages, _ := args.Get(0).([]*domain.Stage)
	return stages, args.Error(1)
}

func (m *groupingServiceMock) GeneratePools(ctx context.Context, req domain.PoolGenerationRequest) ([]*domain.Stage, error) {
	args := m.Called(ctx, req)
	stages, _ := args.Get(0).([]*domain.Stage)
	return stages, args.Error(1)
}

func (m *groupingServiceMock) Board(ctx context.Context, tournamentID, categoryID string) (grouping.Board, error) {
	args := m.Called(ctx, tournamentID, categoryID)
	return args.Get(0).(grouping.Board), args.Error(1)
}

type assignmentServiceMock struct {
	mocks.PoolAssignmentUseCase
}

func (m *assignmentServiceMock) Drop(ctx context.Context, tournamentID, categoryID, teamID, over string) (grouping.Outcome, error) {
	args := m.Called(ctx, tournamentID, categoryID, teamID, over)
	return args.Get(0).(grouping.Outcome), args.Error(1)
}

type sessionServiceMock struct {
	mock.Mock
}

func (m *sessionServiceMock) Open(ctx context.Context, tournamentID, categoryID string, readOnly bool) (*usecase.SessionState, error) {
	args := m.Called(ctx, tournamentID, categoryID, readOnly)
	state, _ := args.Get(0).(*usecase.SessionState)
	return state, args.Error(1)
}

func (m *sessionServiceMock) Board(ctx context.Context, sessionID string) (*usecase.SessionState, error) {
	args := m.Called(ctx, sessionID)
	state, _ := args.Get(0).(*usecase.SessionState)
	return state, args.Error(1)
}

func (m *sessionServiceMock) BeginDrag(ctx context.Context, sessionID, teamID string) (bool, *usecase.SessionState, error) {
	args := m.Called(ctx, sessionID, teamID)
	state, _ := args.Get(1).(*usecase.SessionState)
	return args.Bool(0), state, args.Error(2)
}

func (m *sessionServiceMock) EndDrag(ctx context.Context, sessionID string, over *string) (grouping.Outcome, *usecase.SessionState, error) {
	args := m.Called(ctx, sessionID, over)
	state, _ := args.Get(1).(*usecase.SessionState)
	return args.Get(0).(grouping.Outcome), state, args.Error(2)
}

func (m *sessionServiceMock) Close(sessionID string) error {
	return m.Called(sessionID).Error(0)
}
