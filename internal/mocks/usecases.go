package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"grouping-service/internal/domain"
)

// PoolAssignmentUseCase is a mock type for the PoolAssignmentUseCase type
type PoolAssignmentUseCase struct {
	mock.Mock
}

// AssignPool provides a mock function with given fields: ctx, tournamentID, teamID, poolName
func (_m *PoolAssignmentUseCase) AssignPool(ctx context.Context, tournamentID, teamID string, poolName *string) (*domain.Team, error) {
	ret := _m.Called(ctx, tournamentID, teamID, poolName)

	var r0 *domain.Team
	if rf, ok := ret.Get(0).(func(context.Context, string, string, *string) *domain.Team); ok {
		r0 = rf(ctx, tournamentID, teamID, poolName)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Team)
	}
	return r0, ret.Error(1)
}

// IntentQueue is a mock type for the IntentQueue type
type IntentQueue struct {
	mock.Mock
}

// Enqueue provides a mock function with given fields: intent
func (_m *IntentQueue) Enqueue(intent domain.AssignmentIntent) bool {
	ret := _m.Called(intent)
	return ret.Bool(0)
}
