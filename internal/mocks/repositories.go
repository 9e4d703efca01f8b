// Package mocks содержит моки testify для интерфейсов domain.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"grouping-service/internal/domain"
)

// TeamRepository is a mock type for the TeamRepository type
type TeamRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, team
func (_m *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	ret := _m.Called(ctx, team)
	return ret.Error(0)
}

// GetByID provides a mock function with given fields: ctx, tournamentID, teamID
func (_m *TeamRepository) GetByID(ctx context.Context, tournamentID, teamID string) (*domain.Team, error) {
	ret := _m.Called(ctx, tournamentID, teamID)

	var r0 *domain.Team
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *domain.Team); ok {
		r0 = rf(ctx, tournamentID, teamID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Team)
	}
	return r0, ret.Error(1)
}

// ListByTournament provides a mock function with given fields: ctx, tournamentID
func (_m *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*domain.Team, error) {
	ret := _m.Called(ctx, tournamentID)

	var r0 []*domain.Team
	if rf, ok := ret.Get(0).(func(context.Context, string) []*domain.Team); ok {
		r0 = rf(ctx, tournamentID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Team)
	}
	return r0, ret.Error(1)
}

// UpdatePool provides a mock function with given fields: ctx, tournamentID, teamID, poolName
func (_m *TeamRepository) UpdatePool(ctx context.Context, tournamentID, teamID string, poolName *string) (*domain.Team, error) {
	ret := _m.Called(ctx, tournamentID, teamID, poolName)

	var r0 *domain.Team
	if rf, ok := ret.Get(0).(func(context.Context, string, string, *string) *domain.Team); ok {
		r0 = rf(ctx, tournamentID, teamID, poolName)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Team)
	}
	return r0, ret.Error(1)
}

// ExistsTeam provides a mock function with given fields: ctx, tournamentID, teamID
func (_m *TeamRepository) ExistsTeam(ctx context.Context, tournamentID, teamID string) (bool, error) {
	ret := _m.Called(ctx, tournamentID, teamID)
	return ret.Bool(0), ret.Error(1)
}

// StageRepository is a mock type for the StageRepository type
type StageRepository struct {
	mock.Mock
}

// CreateBatch provides a mock function with given fields: ctx, stages
func (_m *StageRepository) CreateBatch(ctx context.Context, stages []*domain.Stage) error {
	ret := _m.Called(ctx, stages)
	return ret.Error(0)
}

// ListByTournament provides a mock function with given fields: ctx, tournamentID, categoryID
func (_m *StageRepository) ListByTournament(ctx context.Context, tournamentID, categoryID string) ([]*domain.Stage, error) {
	ret := _m.Called(ctx, tournamentID, categoryID)

	var r0 []*domain.Stage
	if rf, ok := ret.Get(0).(func(context.Context, string, string) []*domain.Stage); ok {
		r0 = rf(ctx, tournamentID, categoryID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Stage)
	}
	return r0, ret.Error(1)
}

// ExistsByName provides a mock function with given fields: ctx, tournamentID, categoryID, name
func (_m *StageRepository) ExistsByName(ctx context.Context, tournamentID, categoryID, name string) (bool, error) {
	ret := _m.Called(ctx, tournamentID, categoryID, name)
	return ret.Bool(0), ret.Error(1)
}

// EventPublisher is a mock type for the EventPublisher type
type EventPublisher struct {
	mock.Mock
}

// PublishPoolAssigned provides a mock function with given fields: ctx, event
func (_m *EventPublisher) PublishPoolAssigned(ctx context.Context, event *domain.PoolAssignedEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

// Close provides a mock function with given fields:
func (_m *EventPublisher) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}
