package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/sirupsen/logrus"

	"grouping-service/internal/domain"
	"grouping-service/internal/grouping"
)

// pendingTTL - сколько сессия показывает незафиксированное назначение
// поверх данных хранилища.
const pendingTTL = 30 * time.Second

// IntentQueue принимает намерения назначения на асинхронную фиксацию.
type IntentQueue interface {
	Enqueue(intent domain.AssignmentIntent) bool
}

// SessionState - снимок сессии редактора после операции.
type SessionState struct {
	SessionID      string
	TournamentID   string
	CategoryID     string
	ReadOnly       bool
	DraggingTeamID string
	Board          grouping.Board
}

type pendingAssignment struct {
	poolName *string
	queuedAt time.Time
}

// EditorSession - серверная сессия редактора групп. Все операции над
// сессией выполняются под ее мьютексом.
type EditorSession struct {
	id           string
	tournamentID string
	categoryID   string
	readOnly     bool

	mu        sync.Mutex
	editor    *grouping.Editor
	baseTeams []*domain.Team
	pending   map[string]pendingAssignment
	lastUsed  time.Time
}

// EditorSessionUseCase управляет сессиями редактора групп.
type EditorSessionUseCase struct {
	teamRepo  domain.TeamRepository
	stageRepo domain.StageRepository
	queue     IntentQueue
	metrics   domain.MetricsCollector
	logger    *logrus.Logger
	ttl       time.Duration
	now       func() time.Time

	sessions *xsync.Map[string, *EditorSession]
}

// NewEditorSessionUseCase создает новый экземпляр EditorSessionUseCase.
func NewEditorSessionUseCase(
	teamRepo domain.TeamRepository,
	stageRepo domain.StageRepository,
	queue IntentQueue,
	metrics domain.MetricsCollector,
	logger *logrus.Logger,
	ttl time.Duration,
) *EditorSessionUseCase {
	return &EditorSessionUseCase{
		teamRepo:  teamRepo,
		stageRepo: stageRepo,
		queue:     queue,
		metrics:   metrics,
		logger:    logger,
		ttl:       ttl,
		now:       time.Now,
		sessions:  xsync.NewMap[string, *EditorSession](),
	}
}

// Open создает сессию редактора для турнира и категории.
func (uc *EditorSessionUseCase) Open(ctx context.Context, tournamentID, categoryID string, readOnly bool) (*SessionState, error) {
	if tournamentID == "" {
		return nil, domain.ErrInvalidTournamentID
	}

	props, err := loadProps(ctx, uc.teamRepo, uc.stageRepo, tournamentID, categoryID)
	if err != nil {
		return nil, err
	}

	session := &EditorSession{
		id:           uuid.NewString(),
		tournamentID: tournamentID,
		categoryID:   categoryID,
		readOnly:     readOnly,
		pending:      make(map[string]pendingAssignment),
		lastUsed:     uc.now(),
	}
	props.ReadOnly = readOnly
	props.OnAssign = uc.assigner(session)
	session.editor = grouping.NewEditor(props)
	session.baseTeams = props.Teams

	uc.sessions.Store(session.id, session)
	uc.metrics.SetActiveSessions(uc.sessions.Size())

	uc.logger.WithFields(logrus.Fields{
		"session_id":    session.id,
		"tournament_id": tournamentID,
		"category_id":   categoryID,
		"read_only":     readOnly,
	}).Info("Editor session opened")

	return session.state(), nil
}

// Board возвращает актуальную доску сессии.
func (uc *EditorSessionUseCase) Board(ctx context.Context, sessionID string) (*SessionState, error) {
	session, err := uc.acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	return session.state(), nil
}

// BeginDrag берет карточку команды. Возвращает false, если перетаскивание
// не началось.
func (uc *EditorSessionUseCase) BeginDrag(ctx context.Context, sessionID, teamID string) (bool, *SessionState, error) {
	session, err := uc.acquire(ctx, sessionID)
	if err != nil {
		return false, nil, err
	}
	defer session.mu.Unlock()

	if session.readOnly {
		uc.metrics.RecordDrop("readonly")
	}

	started := session.editor.BeginDrag(teamID)
	return started, session.state(), nil
}

// EndDrag отпускает карточку над контейнером over. Nil отменяет перетаскивание.
func (uc *EditorSessionUseCase) EndDrag(ctx context.Context, sessionID string, over *string) (grouping.Outcome, *SessionState, error) {
	session, err := uc.acquire(ctx, sessionID)
	if err != nil {
		return grouping.OutcomeIgnored, nil, err
	}
	defer session.mu.Unlock()

	outcome := session.editor.EndDrag(over)
	if outcome != grouping.OutcomeIgnored {
		uc.metrics.RecordDrop(outcome.String())
	}

	// Доска строится заново с учетом только что поставленного назначения
	session.refresh(session.baseTeams, session.editor.Props().Stages, uc.now())
	return outcome, session.state(), nil
}

// Close закрывает сессию.
func (uc *EditorSessionUseCase) Close(sessionID string) error {
	if sessionID == "" {
		return domain.ErrInvalidSessionID
	}
	if _, ok := uc.sessions.LoadAndDelete(sessionID); !ok {
		return domain.ErrSessionNotFound
	}
	uc.metrics.SetActiveSessions(uc.sessions.Size())
	return nil
}

// Sweep закрывает сессии, простаивающие дольше TTL, и возвращает их число.
func (uc *EditorSessionUseCase) Sweep(now time.Time) int {
	var expired []string
	uc.sessions.Range(func(id string, session *EditorSession) bool {
		session.mu.Lock()
		idle := now.Sub(session.lastUsed)
		session.mu.Unlock()

		if idle > uc.ttl {
			expired = append(expired, id)
		}
		return true
	})

	for _, id := range expired {
		uc.sessions.Delete(id)
	}

	if len(expired) > 0 {
		uc.metrics.SetActiveSessions(uc.sessions.Size())
		uc.logger.WithField("expired", len(expired)).Info("Editor sessions swept")
	}
	return len(expired)
}

// RunSweeper периодически вызывает Sweep до отмены ctx.
func (uc *EditorSessionUseCase) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			uc.Sweep(now)
		}
	}
}

// Count возвращает число открытых сессий.
func (uc *EditorSessionUseCase) Count() int {
	return uc.sessions.Size()
}

// acquire находит сессию, блокирует ее и обновляет входные данные редактора
// из хранилища. Вызывающий код обязан разблокировать сессию.
func (uc *EditorSessionUseCase) acquire(ctx context.Context, sessionID string) (*EditorSession, error) {
	if sessionID == "" {
		return nil, domain.ErrInvalidSessionID
	}

	session, ok := uc.sessions.Load(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	props, err := loadProps(ctx, uc.teamRepo, uc.stageRepo, session.tournamentID, session.categoryID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	now := uc.now()
	session.lastUsed = now
	session.refresh(props.Teams, props.Stages, now)
	return session, nil
}

// assigner ставит назначение в очередь фиксации и запоминает его, чтобы
// доска сессии сразу отражала перенос карточки.
func (uc *EditorSessionUseCase) assigner(session *EditorSession) grouping.Assigner {
	return grouping.AssignerFunc(func(teamID string, poolName *string) {
		intent := domain.AssignmentIntent{
			TournamentID: session.tournamentID,
			TeamID:       teamID,
			PoolName:     poolName,
		}

		if !uc.queue.Enqueue(intent) {
			uc.logger.WithFields(logrus.Fields{
				"session_id": session.id,
				"team_id":    teamID,
			}).Warn("Assignment queue is full, intent dropped")
			return
		}

		session.pending[teamID] = pendingAssignment{poolName: poolName, queuedAt: uc.now()}
	})
}

// refresh подставляет новые команды и этапы, накладывая незафиксированные
// назначения. Назначение снимается, когда хранилище его догнало или истек pendingTTL.
func (s *EditorSession) refresh(teams []*domain.Team, stages []*domain.Stage, now time.Time) {
	s.baseTeams = teams
	props := s.editor.Props()
	props.Stages = stages
	props.Teams = s.applyPending(teams, now)
	s.editor.SetProps(props)
}

func (s *EditorSession) applyPending(teams []*domain.Team, now time.Time) []*domain.Team {
	if len(s.pending) == 0 {
		return teams
	}

	result := make([]*domain.Team, 0, len(teams))
	for _, team := range teams {
		if team == nil {
			continue
		}
		pending, ok := s.pending[team.ID]
		if !ok {
			result = append(result, team)
			continue
		}
		if samePool(team.PoolNumber, pending.poolName) || now.Sub(pending.queuedAt) > pendingTTL {
			delete(s.pending, team.ID)
			result = append(result, team)
			continue
		}

		clone := *team
		clone.PoolNumber = pending.poolName
		result = append(result, &clone)
	}
	return result
}

func (s *EditorSession) state() *SessionState {
	state := &SessionState{
		SessionID:    s.id,
		TournamentID: s.tournamentID,
		CategoryID:   s.categoryID,
		ReadOnly:     s.readOnly,
		Board:        s.editor.Render(),
	}
	if dragging, ok := s.editor.Session().(grouping.Dragging); ok {
		state.DraggingTeamID = dragging.TeamID
	}
	return state
}

func samePool(a, b *string) bool {
	emptyA := a == nil || *a == ""
	emptyB := b == nil || *b == ""
	if emptyA || emptyB {
		return emptyA == emptyB
	}
	return *a == *b
}
