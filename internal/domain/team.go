package domain

import "context"

// UnassignedCategory - устаревшая метка категории, которую редактор групп
// считает подходящей для любой выбранной категории.
const UnassignedCategory = "Unassigned"

// Team представляет команду, заявленную на турнир.
type Team struct {
	ID                   string
	TournamentID         string
	Name                 string
	OrganisationName     string
	Category             string
	TournamentCategoryID *string
	PoolNumber           *string
	IsActive             bool
}

// IsUnassigned сообщает, что команда не распределена ни в один пул.
func (t *Team) IsUnassigned() bool {
	return t.PoolNumber == nil || *t.PoolNumber == ""
}

// CategoryID возвращает идентификатор категории или пустую строку.
func (t *Team) CategoryID() string {
	if t.TournamentCategoryID == nil {
		return ""
	}
	return *t.TournamentCategoryID
}

// StageScope возвращает категорию, в которой ищется этап для пула команды.
// Команда с меткой UnassignedCategory показывается в редакторе любой
// категории, поэтому ее этап ищется по всему турниру.
func (t *Team) StageScope() string {
	if t.Category == UnassignedCategory {
		return ""
	}
	return t.CategoryID()
}

// TeamRepository определяет контракт для работы с хранилищем команд турнира.
type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, tournamentID, teamID string) (*Team, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]*Team, error)
	UpdatePool(ctx context.Context, tournamentID, teamID string, poolName *string) (*Team, error)
	ExistsTeam(ctx context.Context, tournamentID, teamID string) (bool, error)
}
