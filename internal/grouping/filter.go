package grouping

import "grouping-service/internal/domain"

// RelevantTeams оставляет команды, относящиеся к выбранной категории.
// Пустая категория означает все команды. Иначе подходят команды без
// категории, команды этой категории и команды с меткой "Unassigned"
// (устаревшее правило, сохраняется для совместимости).
func RelevantTeams(teams []*domain.Team, categoryID string) []*domain.Team {
	relevant := make([]*domain.Team, 0, len(teams))
	for _, team := range teams {
		if team == nil {
			continue
		}
		if categoryID == "" || isRelevant(team, categoryID) {
			relevant = append(relevant, team)
		}
	}
	return relevant
}

func isRelevant(team *domain.Team, categoryID string) bool {
	teamCategory := team.CategoryID()
	return teamCategory == "" ||
		teamCategory == categoryID ||
		team.Category == domain.UnassignedCategory
}

// Partition - разбиение команд по контейнерам на один проход отрисовки.
type Partition struct {
	Unassigned []*domain.Team
	ByPool     map[string][]*domain.Team
	// Orphaned - команды с пулом, для которого нет этапа.
	Orphaned []*domain.Team
}

// PartitionTeams раскладывает команды по контейнерам по значению PoolNumber.
// Входные срезы не изменяются.
func PartitionTeams(teams []*domain.Team, stages []*domain.Stage) Partition {
	known := make(map[string]struct{}, len(stages))
	for _, stage := range stages {
		if stage != nil {
			known[stage.Name] = struct{}{}
		}
	}

	p := Partition{
		Unassigned: []*domain.Team{},
		ByPool:     make(map[string][]*domain.Team, len(known)),
		Orphaned:   []*domain.Team{},
	}

	for _, team := range teams {
		if team == nil {
			continue
		}
		if team.IsUnassigned() {
			p.Unassigned = append(p.Unassigned, team)
			continue
		}
		pool := *team.PoolNumber
		if _, ok := known[pool]; !ok {
			p.Orphaned = append(p.Orphaned, team)
			continue
		}
		p.ByPool[pool] = append(p.ByPool[pool], team)
	}

	return p
}
