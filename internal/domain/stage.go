package domain

import "context"

// Типы этапов турнира.
const (
	StageTypePool     = "POOL"
	StageTypeKnockout = "KNOCKOUT"
)

// Stage представляет этап турнира, в который распределяются команды.
// Имя этапа уникально в пределах категории: по нему редактор групп
// сопоставляет контейнер и значение пула.
type Stage struct {
	ID           string
	TournamentID string
	CategoryID   *string
	Name         string
	StageType    string
	DisplayOrder int
}

// PoolGenerationRequest описывает создание этапов-пулов.
type PoolGenerationRequest struct {
	TournamentID string
	CategoryID   string
	Count        int
	Names        []string
}

// StageRepository определяет контракт для работы с хранилищем этапов.
type StageRepository interface {
	CreateBatch(ctx context.Context, stages []*Stage) error
	// ListByTournament возвращает этапы турнира. Для непустой категории
	// возвращаются этапы категории и этапы без категории.
	ListByTournament(ctx context.Context, tournamentID, categoryID string) ([]*Stage, error)
	ExistsByName(ctx context.Context, tournamentID, categoryID, name string) (bool, error)
}
