package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"grouping-service/internal/database"
	"grouping-service/internal/domain"
)

// StageRepository реализует взаимодействие с этапами турнира в PostgreSQL.
type StageRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewStageRepository создает новый экземпляр StageRepository.
func NewStageRepository(db *sql.DB, queries *database.Queries) domain.StageRepository {
	return &StageRepository{
		db:      db,
		queries: queries,
	}
}

// CreateBatch создает этапы в одной транзакции.
func (r *StageRepository) CreateBatch(ctx context.Context, stages []*domain.Stage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	for _, stage := range stages {
		err = txQueries.CreateStage(ctx, database.CreateStageParams{
			StageID:      stage.ID,
			TournamentID: stage.TournamentID,
			CategoryID:   toNullString(stage.CategoryID),
			Name:         stage.Name,
			StageType:    stage.StageType,
			DisplayOrder: int32(stage.DisplayOrder),
		})
		if err != nil {
			if isUniqueViolation(err) {
				err = domain.ErrStageAlreadyExists
				return err
			}
			return fmt.Errorf("failed to create stage %s: %w", stage.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListByTournament возвращает этапы турнира в порядке отображения.
func (r *StageRepository) ListByTournament(ctx context.Context, tournamentID, categoryID string) ([]*domain.Stage, error) {
	var (
		dbStages []database.TournamentStage
		err      error
	)
	if categoryID == "" {
		dbStages, err = r.queries.ListStagesByTournament(ctx, tournamentID)
	} else {
		dbStages, err = r.queries.ListStagesByCategory(ctx, database.ListStagesByCategoryParams{
			TournamentID: tournamentID,
			CategoryID:   sql.NullString{String: categoryID, Valid: true},
		})
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Stage{}, nil
		}
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}

	stages := make([]*domain.Stage, 0, len(dbStages))
	for _, dbStage := range dbStages {
		stages = append(stages, &domain.Stage{
			ID:           dbStage.StageID,
			TournamentID: dbStage.TournamentID,
			CategoryID:   fromNullString(dbStage.CategoryID),
			Name:         dbStage.Name,
			StageType:    dbStage.StageType,
			DisplayOrder: int(dbStage.DisplayOrder),
		})
	}

	return stages, nil
}

// ExistsByName проверяет, виден ли этап с таким именем в категории.
func (r *StageRepository) ExistsByName(ctx context.Context, tournamentID, categoryID, name string) (bool, error) {
	count, err := r.queries.StageNameExists(ctx, database.StageNameExistsParams{
		TournamentID: tournamentID,
		Column2:      categoryID,
		Name:         name,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check stage existence: %w", err)
	}
	return count > 0, nil
}
