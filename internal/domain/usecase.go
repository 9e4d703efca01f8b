package domain

import "context"

// PoolAssignmentUseCase определяет бизнес-логику назначения команд в пулы.
// Это внешний исполнитель, на который опирается onAssign редактора групп.
type PoolAssignmentUseCase interface {
	AssignPool(ctx context.Context, tournamentID, teamID string, poolName *string) (*Team, error)
}

// GroupingUseCase определяет бизнес-логику для работы с командами и этапами турнира.
type GroupingUseCase interface {
	ListTeams(ctx context.Context, tournamentID, categoryID string) ([]*Team, error)
	RegisterTeam(ctx context.Context, team *Team) error
	ListStages(ctx context.Context, tournamentID, categoryID string) ([]*Stage, error)
	GeneratePools(ctx context.Context, req PoolGenerationRequest) ([]*Stage, error)
}
