// Package tui - терминальный редактор распределения команд по пулам.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grouping-service/api"
	"grouping-service/internal/domain"
	"grouping-service/internal/grouping"
)

const requestTimeout = 10 * time.Second

// Backend - операции API, которые нужны редактору.
type Backend interface {
	ListTeams(ctx context.Context, tournamentID, categoryID string) ([]api.Team, error)
	ListStages(ctx context.Context, tournamentID, categoryID string) ([]api.Stage, error)
	AssignPool(ctx context.Context, tournamentID, teamID string, poolName *string) (*api.Team, error)
}

// Options задает турнир и режим редактора.
type Options struct {
	TournamentID string
	CategoryID   string
	ReadOnly     bool
}

type dataMsg struct {
	teams  []*domain.Team
	stages []*domain.Stage
	err    error
}

type assignedMsg struct {
	intent domain.AssignmentIntent
	err    error
}

// Model - модель bubbletea поверх grouping.Editor. Перемещение курсора по
// колонкам выбирает контейнер, над которым отпускается карточка.
type Model struct {
	backend Backend
	opts    Options
	styles  Styles

	editor   *grouping.Editor
	outbox   *outbox
	assigner grouping.Assigner

	column  int
	row     int
	loading bool
	status  string
	err     error
}

// New создает модель редактора.
func New(backend Backend, opts Options) Model {
	m := Model{
		backend: backend,
		opts:    opts,
		styles:  DefaultStyles(),
		loading: true,
		outbox:  &outbox{},
	}
	m.editor = grouping.NewEditor(grouping.Props{
		CategoryID: opts.CategoryID,
		ReadOnly:   opts.ReadOnly,
	})
	m.assigner = newAssigner(m.editor, m.outbox, opts.TournamentID)
	return m
}

// outbox копит назначения между EndDrag и отправкой на сервер. Модель
// копируется bubbletea по значению, поэтому очередь хранится по указателю.
type outbox struct {
	intents []domain.AssignmentIntent
}

// Init загружает команды и этапы.
func (m Model) Init() tea.Cmd {
	return m.load()
}

// Update обрабатывает сообщения bubbletea.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dataMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.setData(msg.teams, msg.stages)
		return m, nil

	case assignedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("assign %s: %w", msg.intent.TeamID, msg.err)
			// Локальное состояние могло разойтись с сервером
			return m, m.load()
		}
		m.status = fmt.Sprintf("Saved %s", msg.intent.TeamID)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "left", "h":
		m.moveColumn(-1)
	case "right", "l":
		m.moveColumn(1)
	case "up", "k":
		m.moveRow(-1)
	case "down", "j":
		m.moveRow(1)

	case " ", "enter":
		return m.pickOrDrop()

	case "esc":
		if m.editor.Cancel() == grouping.OutcomeCancelled {
			m.status = "Drag cancelled"
		}

	case "r":
		m.loading = true
		m.err = nil
		return m, m.load()
	}

	return m, nil
}

// pickOrDrop берет карточку под курсором или отпускает перетаскиваемую
// карточку в текущую колонку.
func (m Model) pickOrDrop() (tea.Model, tea.Cmd) {
	board := m.editor.Render()
	containers := board.Containers()
	if m.column >= len(containers) {
		return m, nil
	}
	current := containers[m.column]

	if _, dragging := m.editor.Session().(grouping.Dragging); !dragging {
		if m.row < len(current.Cards) && m.editor.BeginDrag(current.Cards[m.row].TeamID) {
			m.status = "Dragging " + current.Cards[m.row].Name
		}
		return m, nil
	}

	over := current.ID
	outcome := m.editor.EndDrag(&over)
	m.status = outcome.String()
	m.clampRow()

	return m, m.flush()
}

// flush отправляет накопленные назначения на сервер.
func (m Model) flush() tea.Cmd {
	if len(m.outbox.intents) == 0 {
		return nil
	}

	backend := m.backend
	cmds := make([]tea.Cmd, 0, len(m.outbox.intents))
	for _, intent := range m.outbox.intents {
		intent := intent
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			_, err := backend.AssignPool(ctx, intent.TournamentID, intent.TeamID, intent.PoolName)
			return assignedMsg{intent: intent, err: err}
		})
	}
	m.outbox.intents = nil
	return tea.Batch(cmds...)
}

// newAssigner создает OnAssign редактора: назначение сразу отражается на
// доске и ставится в очередь на отправку.
func newAssigner(editor *grouping.Editor, queue *outbox, tournamentID string) grouping.Assigner {
	return grouping.AssignerFunc(func(teamID string, poolName *string) {
		props := editor.Props()
		teams := make([]*domain.Team, 0, len(props.Teams))
		for _, team := range props.Teams {
			if team != nil && team.ID == teamID {
				clone := *team
				clone.PoolNumber = poolName
				team = &clone
			}
			teams = append(teams, team)
		}
		props.Teams = teams
		editor.SetProps(props)

		queue.intents = append(queue.intents, domain.AssignmentIntent{
			TournamentID: tournamentID,
			TeamID:       teamID,
			PoolName:     poolName,
		})
	})
}

func (m *Model) setData(teams []*domain.Team, stages []*domain.Stage) {
	m.editor.SetProps(grouping.Props{
		Teams:      teams,
		Stages:     stages,
		CategoryID: m.opts.CategoryID,
		OnAssign:   m.assigner,
		ReadOnly:   m.opts.ReadOnly,
	})
	m.clampColumn()
	m.clampRow()
}

func (m *Model) moveColumn(delta int) {
	m.column += delta
	m.clampColumn()
	m.clampRow()
}

func (m *Model) moveRow(delta int) {
	m.row += delta
	m.clampRow()
}

func (m *Model) clampColumn() {
	count := len(m.editor.Render().Containers())
	if m.column >= count {
		m.column = count - 1
	}
	if m.column < 0 {
		m.column = 0
	}
}

func (m *Model) clampRow() {
	containers := m.editor.Render().Containers()
	cards := 0
	if m.column < len(containers) {
		cards = len(containers[m.column].Cards)
	}
	if m.row >= cards {
		m.row = cards - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m Model) load() tea.Cmd {
	backend := m.backend
	opts := m.opts
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		apiTeams, err := backend.ListTeams(ctx, opts.TournamentID, "")
		if err != nil {
			return dataMsg{err: err}
		}
		apiStages, err := backend.ListStages(ctx, opts.TournamentID, opts.CategoryID)
		if err != nil {
			return dataMsg{err: err}
		}

		return dataMsg{teams: ToDomainTeams(apiTeams), stages: ToDomainStages(apiStages)}
	}
}

// View рисует доску.
func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Pool grouping · %s", m.opts.TournamentID)
	if m.opts.ReadOnly {
		title += " (read-only)"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	if m.loading && len(m.editor.Props().Teams) == 0 {
		b.WriteString("Loading...\n")
		return b.String()
	}

	board := m.editor.Render()
	_, dragging := m.editor.Session().(grouping.Dragging)

	columns := make([]string, 0, len(board.Pools)+1)
	for i, container := range board.Containers() {
		columns = append(columns, m.renderColumn(container, i == m.column, dragging))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")

	if len(board.Orphaned) > 0 {
		names := make([]string, 0, len(board.Orphaned))
		for _, card := range board.Orphaned {
			names = append(names, card.Name)
		}
		b.WriteString(m.styles.Status.Render("Pool without stage: " + strings.Join(names, ", ")))
		b.WriteString("\n")
	}

	if board.Overlay != nil {
		b.WriteString(m.styles.Overlay.Render("⇢ " + board.Overlay.Name + " · " + board.Overlay.OrganisationName))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	help := "←/→ column · ↑/↓ team · space pick/drop · esc cancel · r refresh · q quit"
	if m.opts.ReadOnly {
		help = "←/→ column · ↑/↓ team · r refresh · q quit"
	}
	b.WriteString(m.styles.Help.Render(help))
	return b.String()
}

func (m Model) renderColumn(container grouping.Container, active, dragging bool) string {
	var lines []string
	lines = append(lines, m.styles.ColumnTitle.Render(container.Title)+" "+m.styles.Badge.Render(container.Badge))

	if len(container.Cards) == 0 {
		lines = append(lines, m.styles.Placeholder.Render(container.Placeholder))
	}
	for i, card := range container.Cards {
		style := m.styles.Card
		prefix := "  "
		if card.Dimmed {
			style = m.styles.Dimmed
		}
		if active && i == m.row && !dragging {
			style = m.styles.Cursor
			prefix = "> "
		}
		lines = append(lines, style.Render(prefix+card.Name))
		lines = append(lines, "  "+m.styles.Organisation.Render(card.OrganisationName))
	}

	columnStyle := m.styles.Column
	switch {
	case active && dragging:
		columnStyle = m.styles.DropTarget
	case active:
		columnStyle = m.styles.ActiveColumn
	}
	return columnStyle.Render(strings.Join(lines, "\n"))
}

// ToDomainTeams переводит команды API в доменные.
func ToDomainTeams(teams []api.Team) []*domain.Team {
	result := make([]*domain.Team, 0, len(teams))
	for _, team := range teams {
		organisation := ""
		if team.OrganisationName != nil {
			organisation = *team.OrganisationName
		}
		result = append(result, &domain.Team{
			ID:                   team.TeamId,
			TournamentID:         team.TournamentId,
			Name:                 team.TeamName,
			OrganisationName:     organisation,
			Category:             team.Category,
			TournamentCategoryID: team.CategoryId,
			PoolNumber:           team.PoolNumber,
			IsActive:             team.IsActive,
		})
	}
	return result
}

// ToDomainStages переводит этапы API в доменные.
func ToDomainStages(stages []api.Stage) []*domain.Stage {
	result := make([]*domain.Stage, 0, len(stages))
	for _, stage := range stages {
		result = append(result, &domain.Stage{
			ID:           stage.StageId,
			TournamentID: stage.TournamentId,
			CategoryID:   stage.CategoryId,
			Name:         stage.Name,
			StageType:    string(stage.StageType),
			DisplayOrder: stage.DisplayOrder,
		})
	}
	return result
}
