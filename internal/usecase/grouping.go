package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"grouping-service/internal/domain"
	"grouping-service/internal/grouping"
)

// GroupingUseCase реализует бизнес-логику для команд и этапов турнира.
type GroupingUseCase struct {
	teamRepo  domain.TeamRepository
	stageRepo domain.StageRepository
}

// NewGroupingUseCase создает новый экземпляр GroupingUseCase.
func NewGroupingUseCase(teamRepo domain.TeamRepository, stageRepo domain.StageRepository) *GroupingUseCase {
	return &GroupingUseCase{
		teamRepo:  teamRepo,
		stageRepo: stageRepo,
	}
}

var _ domain.GroupingUseCase = (*GroupingUseCase)(nil)

// ListTeams возвращает команды турнира, подходящие под категорию.
// Пустая категория возвращает все команды.
func (uc *GroupingUseCase) ListTeams(ctx context.Context, tournamentID, categoryID string) ([]*domain.Team, error) {
	if tournamentID == "" {
		return nil, domain.ErrInvalidTournamentID
	}

	teams, err := uc.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	return grouping.RelevantTeams(teams, categoryID), nil
}

// RegisterTeam заявляет команду на турнир без пула.
func (uc *GroupingUseCase) RegisterTeam(ctx context.Context, team *domain.Team) error {
	// Валидация
	if team.TournamentID == "" {
		return domain.ErrInvalidTournamentID
	}
	if team.ID == "" {
		return domain.ErrInvalidTeamID
	}
	if strings.TrimSpace(team.Name) == "" {
		return domain.ErrInvalidTeamName
	}

	exists, err := uc.teamRepo.ExistsTeam(ctx, team.TournamentID, team.ID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrTeamAlreadyExists
	}

	team.PoolNumber = nil
	team.IsActive = true
	return uc.teamRepo.Create(ctx, team)
}

// ListStages возвращает этапы турнира в порядке отображения.
func (uc *GroupingUseCase) ListStages(ctx context.Context, tournamentID, categoryID string) ([]*domain.Stage, error) {
	if tournamentID == "" {
		return nil, domain.ErrInvalidTournamentID
	}
	return uc.stageRepo.ListByTournament(ctx, tournamentID, categoryID)
}

// GeneratePools создает этапы-пулы. Без явных имен пулы называются
// "Pool A", "Pool B" и далее. Новые пулы встают после существующих этапов.
func (uc *GroupingUseCase) GeneratePools(ctx context.Context, req domain.PoolGenerationRequest) ([]*domain.Stage, error) {
	if req.TournamentID == "" {
		return nil, domain.ErrInvalidTournamentID
	}

	names := append([]string(nil), req.Names...)
	if len(names) == 0 {
		if req.Count < 1 {
			return nil, domain.ErrInvalidPoolCount
		}
		names = PoolNames(req.Count)
	}

	// Имена должны быть уникальны и в запросе, и среди существующих этапов
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || name == grouping.UnassignedContainerID {
			return nil, domain.ErrInvalidPoolName
		}
		if _, dup := seen[name]; dup {
			return nil, domain.ErrStageAlreadyExists
		}
		seen[name] = struct{}{}
		names[i] = name
	}

	existing, err := uc.stageRepo.ListByTournament(ctx, req.TournamentID, req.CategoryID)
	if err != nil {
		return nil, err
	}

	nextOrder := 1
	for _, stage := range existing {
		if _, dup := seen[stage.Name]; dup {
			return nil, domain.ErrStageAlreadyExists
		}
		if stage.DisplayOrder >= nextOrder {
			nextOrder = stage.DisplayOrder + 1
		}
	}

	var categoryID *string
	if req.CategoryID != "" {
		value := req.CategoryID
		categoryID = &value
	}

	stages := make([]*domain.Stage, 0, len(names))
	for i, name := range names {
		stages = append(stages, &domain.Stage{
			ID:           uuid.NewString(),
			TournamentID: req.TournamentID,
			CategoryID:   categoryID,
			Name:         name,
			StageType:    domain.StageTypePool,
			DisplayOrder: nextOrder + i,
		})
	}

	if err := uc.stageRepo.CreateBatch(ctx, stages); err != nil {
		return nil, err
	}

	return stages, nil
}

// Board строит доску распределения только для чтения.
func (uc *GroupingUseCase) Board(ctx context.Context, tournamentID, categoryID string) (grouping.Board, error) {
	if tournamentID == "" {
		return grouping.Board{}, domain.ErrInvalidTournamentID
	}

	props, err := loadProps(ctx, uc.teamRepo, uc.stageRepo, tournamentID, categoryID)
	if err != nil {
		return grouping.Board{}, err
	}
	props.ReadOnly = true

	return grouping.NewEditor(props).Render(), nil
}

// PoolNames возвращает имена пулов "Pool A", "Pool B"... После "Pool Z"
// следуют "Pool AA", "Pool AB".
func PoolNames(count int) []string {
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		names = append(names, "Pool "+poolLetters(i))
	}
	return names
}

func poolLetters(index int) string {
	var letters []byte
	for index >= 0 {
		letters = append([]byte{byte('A' + index%26)}, letters...)
		index = index/26 - 1
	}
	return string(letters)
}
