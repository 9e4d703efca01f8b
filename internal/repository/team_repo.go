package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"grouping-service/internal/database"
	"grouping-service/internal/domain"
)

// TeamRepository реализует взаимодействие с командами турнира в PostgreSQL.
type TeamRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewTeamRepository создает новый экземпляр TeamRepository.
func NewTeamRepository(db *sql.DB, queries *database.Queries) domain.TeamRepository {
	return &TeamRepository{
		db:      db,
		queries: queries,
	}
}

// Create заявляет команду на турнир без пула.
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	_, err := r.queries.CreateTournamentTeam(ctx, database.CreateTournamentTeamParams{
		TournamentID:         team.TournamentID,
		TeamID:               team.ID,
		TeamName:             team.Name,
		OrganisationName:     team.OrganisationName,
		Category:             team.Category,
		TournamentCategoryID: toNullString(team.TournamentCategoryID),
		IsActive:             team.IsActive,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTeamAlreadyExists
		}
		return fmt.Errorf("failed to create tournament team: %w", err)
	}

	return nil
}

// GetByID возвращает команду турнира по ID.
func (r *TeamRepository) GetByID(ctx context.Context, tournamentID, teamID string) (*domain.Team, error) {
	dbTeam, err := r.queries.GetTournamentTeam(ctx, database.GetTournamentTeamParams{
		TournamentID: tournamentID,
		TeamID:       teamID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get tournament team: %w", err)
	}

	return toDomainTeam(dbTeam), nil
}

// ListByTournament возвращает активные команды турнира.
func (r *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*domain.Team, error) {
	dbTeams, err := r.queries.ListTournamentTeams(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Team{}, nil
		}
		return nil, fmt.Errorf("failed to list tournament teams: %w", err)
	}

	teams := make([]*domain.Team, 0, len(dbTeams))
	for _, dbTeam := range dbTeams {
		teams = append(teams, toDomainTeam(dbTeam))
	}

	return teams, nil
}

// UpdatePool сохраняет пул команды. Nil снимает команду с пула.
func (r *TeamRepository) UpdatePool(ctx context.Context, tournamentID, teamID string, poolName *string) (*domain.Team, error) {
	dbTeam, err := r.queries.UpdateTeamPool(ctx, database.UpdateTeamPoolParams{
		TournamentID: tournamentID,
		TeamID:       teamID,
		PoolNumber:   toNullString(poolName),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to update team pool: %w", err)
	}

	return toDomainTeam(dbTeam), nil
}

// ExistsTeam проверяет, заявлена ли команда на турнир.
func (r *TeamRepository) ExistsTeam(ctx context.Context, tournamentID, teamID string) (bool, error) {
	count, err := r.queries.TournamentTeamExists(ctx, database.TournamentTeamExistsParams{
		TournamentID: tournamentID,
		TeamID:       teamID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return count > 0, nil
}

func toDomainTeam(dbTeam database.TournamentTeam) *domain.Team {
	return &domain.Team{
		ID:                   dbTeam.TeamID,
		TournamentID:         dbTeam.TournamentID,
		Name:                 dbTeam.TeamName,
		OrganisationName:     dbTeam.OrganisationName,
		Category:             dbTeam.Category,
		TournamentCategoryID: fromNullString(dbTeam.TournamentCategoryID),
		PoolNumber:           fromNullString(dbTeam.PoolNumber),
		IsActive:             dbTeam.IsActive,
	}
}
