package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"grouping-service/internal/domain"
	"grouping-service/internal/grouping"
)

// PoolAssignmentUseCase сохраняет назначения команд в пулы.
type PoolAssignmentUseCase struct {
	teamRepo  domain.TeamRepository
	stageRepo domain.StageRepository
	publisher domain.EventPublisher
	metrics   domain.MetricsCollector
	logger    *logrus.Logger
	now       func() time.Time
}

// NewPoolAssignmentUseCase создает новый экземпляр PoolAssignmentUseCase.
func NewPoolAssignmentUseCase(
	teamRepo domain.TeamRepository,
	stageRepo domain.StageRepository,
	publisher domain.EventPublisher,
	metrics domain.MetricsCollector,
	logger *logrus.Logger,
) *PoolAssignmentUseCase {
	return &PoolAssignmentUseCase{
		teamRepo:  teamRepo,
		stageRepo: stageRepo,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// AssignPool назначает команду в пул. Nil или пустое имя снимает команду с пула.
// Повторное назначение того же пула допустимо.
func (uc *PoolAssignmentUseCase) AssignPool(ctx context.Context, tournamentID, teamID string, poolName *string) (*domain.Team, error) {
	// Валидация
	if tournamentID == "" {
		return nil, domain.ErrInvalidTournamentID
	}
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}
	if poolName != nil && *poolName == "" {
		poolName = nil
	}

	// Команда должна быть заявлена на турнир
	team, err := uc.teamRepo.GetByID(ctx, tournamentID, teamID)
	if err != nil {
		return nil, err
	}

	// Пул должен существовать в категории, где команда видна редактору
	if poolName != nil {
		exists, err := uc.stageRepo.ExistsByName(ctx, tournamentID, team.StageScope(), *poolName)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrStageNotFound
		}
	}

	updated, err := uc.teamRepo.UpdatePool(ctx, tournamentID, teamID, poolName)
	if err != nil {
		return nil, err
	}

	event := &domain.PoolAssignedEvent{
		EventID:      uuid.NewString(),
		TournamentID: tournamentID,
		TeamID:       teamID,
		PoolName:     updated.PoolNumber,
		AssignedAt:   uc.now().UTC(),
	}
	if err := uc.publisher.PublishPoolAssigned(ctx, event); err != nil {
		uc.logger.WithFields(logrus.Fields{
			"tournament_id": tournamentID,
			"team_id":       teamID,
			"event_id":      event.EventID,
		}).WithError(err).Warn("Failed to publish pool assigned event")
	}

	return updated, nil
}

// Drop выполняет перетаскивание за один вызов: берет карточку teamID и
// отпускает ее над контейнером over. Назначение сохраняется синхронно.
func (uc *PoolAssignmentUseCase) Drop(ctx context.Context, tournamentID, categoryID, teamID, over string) (grouping.Outcome, error) {
	if tournamentID == "" {
		return grouping.OutcomeIgnored, domain.ErrInvalidTournamentID
	}
	if teamID == "" {
		return grouping.OutcomeIgnored, domain.ErrInvalidTeamID
	}

	props, err := loadProps(ctx, uc.teamRepo, uc.stageRepo, tournamentID, categoryID)
	if err != nil {
		return grouping.OutcomeIgnored, err
	}

	var commitErr error
	props.OnAssign = grouping.AssignerFunc(func(teamID string, poolName *string) {
		_, commitErr = uc.AssignPool(ctx, tournamentID, teamID, poolName)
	})

	editor := grouping.NewEditor(props)
	if !editor.BeginDrag(teamID) {
		return grouping.OutcomeIgnored, domain.ErrTeamNotFound
	}

	outcome := editor.EndDrag(&over)
	uc.metrics.RecordDrop(outcome.String())

	if commitErr != nil {
		uc.metrics.RecordCommit(domain.CommitResultFailed)
		return outcome, commitErr
	}
	if outcome == grouping.OutcomeAssigned || outcome == grouping.OutcomeUnassigned {
		uc.metrics.RecordCommit(domain.CommitResultOK)
	}
	return outcome, nil
}

// loadProps загружает команды и этапы турнира для редактора.
func loadProps(ctx context.Context, teamRepo domain.TeamRepository, stageRepo domain.StageRepository, tournamentID, categoryID string) (grouping.Props, error) {
	teams, err := teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return grouping.Props{}, err
	}

	stages, err := stageRepo.ListByTournament(ctx, tournamentID, categoryID)
	if err != nil {
		return grouping.Props{}, err
	}

	return grouping.Props{
		Teams:      teams,
		Stages:     stages,
		CategoryID: categoryID,
	}, nil
}
