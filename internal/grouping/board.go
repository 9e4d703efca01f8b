package grouping

import (
	"fmt"
	"strconv"

	"grouping-service/internal/domain"
)

const (
	unassignedTitle       = "Unassigned"
	unassignedPlaceholder = "No unassigned teams"
	poolPlaceholder       = "Drop here"
	unknownOrganisation   = "Unknown Org"
)

// Card - карточка команды в контейнере или под курсором.
type Card struct {
	TeamID           string
	Name             string
	OrganisationName string
	Draggable        bool
	// Dimmed - карточка, которую сейчас тащат: на исходном месте она
	// показывается полупрозрачной.
	Dimmed bool
}

// Container - колонка, в которую можно бросить команду.
type Container struct {
	ID    string
	Title string
	Badge string
	Cards []Card
	// Placeholder заполнен только для пустого контейнера.
	Placeholder string
}

// Count возвращает количество команд в контейнере.
func (c Container) Count() int {
	return len(c.Cards)
}

// Board - результат одного прохода отрисовки редактора.
type Board struct {
	ReadOnly   bool
	Unassigned Container
	Pools      []Container
	Orphaned   []Card
	// Overlay не nil только во время перетаскивания.
	Overlay *Card
}

// Containers возвращает все контейнеры в порядке отображения.
func (b Board) Containers() []Container {
	containers := make([]Container, 0, len(b.Pools)+1)
	containers = append(containers, b.Unassigned)
	return append(containers, b.Pools...)
}

func newCard(team *domain.Team, readOnly bool, activeID string) Card {
	org := team.OrganisationName
	if org == "" {
		org = unknownOrganisation
	}
	return Card{
		TeamID:           team.ID,
		Name:             team.Name,
		OrganisationName: org,
		Draggable:        !readOnly,
		Dimmed:           activeID != "" && team.ID == activeID,
	}
}

func newCards(teams []*domain.Team, readOnly bool, activeID string) []Card {
	cards := make([]Card, 0, len(teams))
	for _, team := range teams {
		cards = append(cards, newCard(team, readOnly, activeID))
	}
	return cards
}

func unassignedContainer(cards []Card) Container {
	c := Container{
		ID:    UnassignedContainerID,
		Title: unassignedTitle,
		Badge: strconv.Itoa(len(cards)),
		Cards: cards,
	}
	if len(cards) == 0 {
		c.Placeholder = unassignedPlaceholder
	}
	return c
}

func poolContainer(stage *domain.Stage, cards []Card) Container {
	c := Container{
		ID:    stage.Name,
		Title: stage.Name,
		Badge: fmt.Sprintf("%d Teams", len(cards)),
		Cards: cards,
	}
	if len(cards) == 0 {
		c.Placeholder = poolPlaceholder
	}
	return c
}
