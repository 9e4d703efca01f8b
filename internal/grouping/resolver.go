package grouping

import "grouping-service/internal/domain"

// UnassignedContainerID - идентификатор контейнера нераспределенных команд.
const UnassignedContainerID = "unassigned-container"

// ResolutionKind описывает, во что превратился идентификатор контейнера.
type ResolutionKind int

const (
	Unmatched ResolutionKind = iota
	ResolvedUnassigned
	ResolvedPool
)

func (k ResolutionKind) String() string {
	switch k {
	case ResolvedUnassigned:
		return "unassigned"
	case ResolvedPool:
		return "pool"
	default:
		return "unmatched"
	}
}

// Resolution - результат сопоставления контейнера со значением пула.
type Resolution struct {
	Kind     ResolutionKind
	PoolName string
}

// Resolved сообщает, что назначение нужно передать в Assigner.
func (r Resolution) Resolved() bool {
	return r.Kind != Unmatched
}

// Value возвращает значение для Assigner: nil означает снятие с пула.
func (r Resolution) Value() *string {
	if r.Kind != ResolvedPool {
		return nil
	}
	name := r.PoolName
	return &name
}

// Resolve сопоставляет идентификатор контейнера со значением пула.
// Контейнеры этапов идентифицируются именем этапа, поэтому при совпадающих
// именах выигрывает первый этап в списке. Неизвестный контейнер не ошибка:
// возвращается Unmatched и назначение не выполняется.
func Resolve(containerID string, stages []*domain.Stage) Resolution {
	if containerID == UnassignedContainerID {
		return Resolution{Kind: ResolvedUnassigned}
	}

	for _, stage := range stages {
		if stage != nil && stage.Name == containerID {
			return Resolution{Kind: ResolvedPool, PoolName: stage.Name}
		}
	}

	return Resolution{Kind: Unmatched}
}
