package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"grouping-service/internal/domain"
	"grouping-service/internal/grouping"
	"grouping-service/internal/mocks"
	"grouping-service/internal/usecase"
)

func TestGroupingUseCase_ListTeams_FiltersByCategory(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	uc := usecase.NewGroupingUseCase(teamRepo, &mocks.StageRepository{})

	legacy := team("t3", "", nil)
	legacy.Category = domain.UnassignedCategory
	teamRepo.On("ListByTournament", ctx, "tour-1").Return([]*domain.Team{
		team("t1", "cat-1", nil),
		team("t2", "cat-2", nil),
		legacy,
	}, nil)

	teams, err := uc.ListTeams(ctx, "tour-1", "cat-1")

	require.NoError(t, err)
	ids := make([]string, 0, len(teams))
	for _, tm := range teams {
		ids = append(ids, tm.ID)
	}
	assert.Equal(t, []string{"t1", "t3"}, ids)
}

func TestGroupingUseCase_RegisterTeam(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	uc := usecase.NewGroupingUseCase(teamRepo, &mocks.StageRepository{})

	newTeam := team("t1", "cat-1", strPtr("Pool A"))
	newTeam.IsActive = false
	teamRepo.On("ExistsTeam", ctx, "tour-1", "t1").Return(false, nil)
	teamRepo.On("Create", ctx, newTeam).Return(nil)

	err := uc.RegisterTeam(ctx, newTeam)

	require.NoError(t, err)
	assert.Nil(t, newTeam.PoolNumber)
	assert.True(t, newTeam.IsActive)
	teamRepo.AssertExpectations(t)
}

func TestGroupingUseCase_RegisterTeam_Errors(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		team     *domain.Team
		exists   bool
		expected error
	}{
		{name: "Empty tournament", team: &domain.Team{ID: "t1", Name: "A"}, expected: domain.ErrInvalidTournamentID},
		{name: "Empty team id", team: &domain.Team{TournamentID: "tour-1", Name: "A"}, expected: domain.ErrInvalidTeamID},
		{name: "Blank name", team: &domain.Team{TournamentID: "tour-1", ID: "t1", Name: "  "}, expected: domain.ErrInvalidTeamName},
		{name: "Already registered", team: team("t1", "", nil), exists: true, expected: domain.ErrTeamAlreadyExists},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			teamRepo := &mocks.TeamRepository{}
			teamRepo.On("ExistsTeam", ctx, mock.Anything, mock.Anything).Return(tc.exists, nil)
			uc := usecase.NewGroupingUseCase(teamRepo, &mocks.StageRepository{})

			err := uc.RegisterTeam(ctx, tc.team)

			assert.ErrorIs(t, err, tc.expected)
			teamRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGroupingUseCase_GeneratePools_DefaultNames(t *testing.T) {
	ctx := context.Background()
	stageRepo := &mocks.StageRepository{}
	uc := usecase.NewGroupingUseCase(&mocks.TeamRepository{}, stageRepo)

	stageRepo.On("ListByTournament", ctx, "tour-1", "cat-1").Return([]*domain.Stage{
		{ID: "s0", TournamentID: "tour-1", Name: "Finals", StageType: domain.StageTypeKnockout, DisplayOrder: 5},
	}, nil)
	stageRepo.On("CreateBatch", ctx, mock.AnythingOfType("[]*domain.Stage")).Return(nil)

	stages, err := uc.GeneratePools(ctx, domain.PoolGenerationRequest{
		TournamentID: "tour-1",
		CategoryID:   "cat-1",
		Count:        3,
	})

	require.NoError(t, err)
	require.Len(t, stages, 3)
	for i, name := range []string{"Pool A", "Pool B", "Pool C"} {
		assert.Equal(t, name, stages[i].Name)
		assert.Equal(t, 6+i, stages[i].DisplayOrder)
		assert.Equal(t, domain.StageTypePool, stages[i].StageType)
		require.NotNil(t, stages[i].CategoryID)
		assert.Equal(t, "cat-1", *stages[i].CategoryID)
		assert.NotEmpty(t, stages[i].ID)
	}
	stageRepo.AssertExpectations(t)
}

func TestGroupingUseCase_GeneratePools_Errors(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		req      domain.PoolGenerationRequest
		existing []*domain.Stage
		expected error
	}{
		{
			name:     "Missing tournament",
			req:      domain.PoolGenerationRequest{Count: 2},
			expected: domain.ErrInvalidTournamentID,
		},
		{
			name:     "Zero count",
			req:      domain.PoolGenerationRequest{TournamentID: "tour-1"},
			expected: domain.ErrInvalidPoolCount,
		},
		{
			name:     "Duplicate names in request",
			req:      domain.PoolGenerationRequest{TournamentID: "tour-1", Names: []string{"Gold", "Gold"}},
			expected: domain.ErrStageAlreadyExists,
		},
		{
			name:     "Sentinel name",
			req:      domain.PoolGenerationRequest{TournamentID: "tour-1", Names: []string{grouping.UnassignedContainerID}},
			expected: domain.ErrInvalidPoolName,
		},
		{
			name:     "Name already used",
			req:      domain.PoolGenerationRequest{TournamentID: "tour-1", Count: 1},
			existing: []*domain.Stage{poolStage("Pool A", 1)},
			expected: domain.ErrStageAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stageRepo := &mocks.StageRepository{}
			stageRepo.On("ListByTournament", ctx, mock.Anything, mock.Anything).Return(tc.existing, nil)
			uc := usecase.NewGroupingUseCase(&mocks.TeamRepository{}, stageRepo)

			_, err := uc.GeneratePools(ctx, tc.req)

			assert.ErrorIs(t, err, tc.expected)
			stageRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
		})
	}
}

func TestGroupingUseCase_GeneratePools_KeepsCallerNames(t *testing.T) {
	ctx := context.Background()
	stageRepo := &mocks.StageRepository{}
	uc := usecase.NewGroupingUseCase(&mocks.TeamRepository{}, stageRepo)

	stageRepo.On("ListByTournament", ctx, "tour-1", "").Return([]*domain.Stage{}, nil)
	stageRepo.On("CreateBatch", ctx, mock.Anything).Return(nil)

	names := []string{" Gold ", "Silver"}
	stages, err := uc.GeneratePools(ctx, domain.PoolGenerationRequest{TournamentID: "tour-1", Names: names})

	require.NoError(t, err)
	assert.Equal(t, "Gold", stages[0].Name)
	assert.Nil(t, stages[0].CategoryID)
	assert.Equal(t, " Gold ", names[0])
}

func TestPoolNames(t *testing.T) {
	names := usecase.PoolNames(28)

	assert.Equal(t, "Pool A", names[0])
	assert.Equal(t, "Pool Z", names[25])
	assert.Equal(t, "Pool AA", names[26])
	assert.Equal(t, "Pool AB", names[27])
}

func TestGroupingUseCase_Board_IsReadOnly(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	stageRepo := &mocks.StageRepository{}
	uc := usecase.NewGroupingUseCase(teamRepo, stageRepo)

	teamRepo.On("ListByTournament", ctx, "tour-1").Return([]*domain.Team{
		team("t1", "", nil),
		team("t2", "", strPtr("Pool A")),
	}, nil)
	stageRepo.On("ListByTournament", ctx, "tour-1", "").Return([]*domain.Stage{poolStage("Pool A", 1)}, nil)

	board, err := uc.Board(ctx, "tour-1", "")

	require.NoError(t, err)
	assert.True(t, board.ReadOnly)
	assert.Equal(t, 1, board.Unassigned.Count())
	require.Len(t, board.Pools, 1)
	assert.Equal(t, 1, board.Pools[0].Count())
	assert.False(t, board.Pools[0].Cards[0].Draggable)
	assert.Nil(t, board.Overlay)
}
