package grouping

import "grouping-service/internal/domain"

// Outcome - итог завершения перетаскивания.
type Outcome int

const (
	// OutcomeIgnored - перетаскивания не было или редактор только для чтения.
	OutcomeIgnored Outcome = iota
	// OutcomeCancelled - карточку отпустили вне контейнеров или нажали Escape.
	OutcomeCancelled
	// OutcomeUnmatched - контейнер не соответствует ни одному этапу.
	OutcomeUnmatched
	OutcomeUnassigned
	OutcomeAssigned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeUnmatched:
		return "unmatched"
	case OutcomeUnassigned:
		return "unassigned"
	case OutcomeAssigned:
		return "assigned"
	default:
		return "ignored"
	}
}

// Props - входные данные редактора. Команды и этапы принадлежат вызывающему
// коду и редактором не изменяются. Имена этапов должны быть уникальны.
type Props struct {
	Teams      []*domain.Team
	Stages     []*domain.Stage
	CategoryID string
	OnAssign   Assigner
	ReadOnly   bool
}

// Editor распределяет команды турнира по пулам перетаскиванием.
// Editor не потокобезопасен: один экземпляр обслуживает одно взаимодействие
// за раз.
type Editor struct {
	props   Props
	session Session
}

// NewEditor создает редактор в состоянии Idle.
func NewEditor(props Props) *Editor {
	return &Editor{
		props:   props,
		session: Idle{},
	}
}

// SetProps заменяет входные данные, например после обновления команд
// родителем. Текущее перетаскивание сохраняется.
func (e *Editor) SetProps(props Props) {
	e.props = props
}

// Props возвращает текущие входные данные.
func (e *Editor) Props() Props {
	return e.props
}

// Session возвращает текущее состояние перетаскивания.
func (e *Editor) Session() Session {
	return e.session
}

// BeginDrag начинает перетаскивание карточки команды и сообщает, началось ли оно.
// В режиме только для чтения, при уже идущем перетаскивании и для команд,
// которых нет среди отображаемых, вызов ничего не делает.
func (e *Editor) BeginDrag(teamID string) bool {
	if e.props.ReadOnly {
		return false
	}
	if _, dragging := e.session.(Dragging); dragging {
		return false
	}
	if !e.isDraggable(teamID) {
		return false
	}

	e.session = Dragging{TeamID: teamID}
	return true
}

// EndDrag завершает перетаскивание над контейнером over. Nil означает, что
// карточку отпустили вне контейнеров. Контейнер сопоставляется с пулом,
// назначение передается в OnAssign, и только затем сессия сбрасывается.
func (e *Editor) EndDrag(over *string) Outcome {
	dragging, ok := e.session.(Dragging)
	if !ok {
		return OutcomeIgnored
	}
	defer func() { e.session = Idle{} }()

	if e.props.ReadOnly {
		return OutcomeIgnored
	}
	if over == nil {
		return OutcomeCancelled
	}

	resolution := Resolve(*over, e.props.Stages)
	if !resolution.Resolved() {
		return OutcomeUnmatched
	}

	if e.props.OnAssign != nil {
		e.props.OnAssign.Assign(dragging.TeamID, resolution.Value())
	}

	if resolution.Kind == ResolvedUnassigned {
		return OutcomeUnassigned
	}
	return OutcomeAssigned
}

// Cancel прерывает перетаскивание без назначения.
func (e *Editor) Cancel() Outcome {
	return e.EndDrag(nil)
}

// Render строит представление редактора заново из текущих входных данных.
func (e *Editor) Render() Board {
	readOnly := e.props.ReadOnly
	activeID := ""
	if dragging, ok := e.session.(Dragging); ok && !readOnly {
		activeID = dragging.TeamID
	}

	relevant := RelevantTeams(e.props.Teams, e.props.CategoryID)
	partition := PartitionTeams(relevant, e.props.Stages)

	board := Board{
		ReadOnly:   readOnly,
		Unassigned: unassignedContainer(newCards(partition.Unassigned, readOnly, activeID)),
		Pools:      make([]Container, 0, len(e.props.Stages)),
		Orphaned:   newCards(partition.Orphaned, readOnly, activeID),
	}

	// Контейнер определяется именем этапа: из одноименных этапов
	// показывается первый, как и в Resolve
	seen := make(map[string]struct{}, len(e.props.Stages))
	for _, stage := range e.props.Stages {
		if stage == nil {
			continue
		}
		if _, dup := seen[stage.Name]; dup {
			continue
		}
		seen[stage.Name] = struct{}{}
		cards := newCards(partition.ByPool[stage.Name], readOnly, activeID)
		board.Pools = append(board.Pools, poolContainer(stage, cards))
	}

	if activeID != "" {
		if team := findTeam(e.props.Teams, activeID); team != nil {
			overlay := newCard(team, readOnly, "")
			board.Overlay = &overlay
		}
	}

	return board
}

func (e *Editor) isDraggable(teamID string) bool {
	if teamID == "" {
		return false
	}
	for _, team := range RelevantTeams(e.props.Teams, e.props.CategoryID) {
		if team.ID == teamID {
			return true
		}
	}
	return false
}

func findTeam(teams []*domain.Team, teamID string) *domain.Team {
	for _, team := range teams {
		if team != nil && team.ID == teamID {
			return team
		}
	}
	return nil
}
