package committer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"grouping-service/internal/domain"
)

// Config задает параметры фиксации назначений.
type Config struct {
	QueueSize int
	Workers   int
	Timeout   time.Duration
}

// Committer асинхронно сохраняет намерения назначения, поставленные
// редактором групп. Enqueue никогда не блокирует вызывающий код.
type Committer struct {
	assigner domain.PoolAssignmentUseCase
	metrics  domain.MetricsCollector
	logger   *logrus.Logger
	timeout  time.Duration
	workers  int

	queue chan domain.AssignmentIntent
	wg    sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
	started bool
}

// New создает Committer. Нулевые значения конфигурации заменяются на
// очередь из 1 элемента и 1 обработчик.
func New(assigner domain.PoolAssignmentUseCase, metrics domain.MetricsCollector, logger *logrus.Logger, cfg Config) *Committer {
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	return &Committer{
		assigner: assigner,
		metrics:  metrics,
		logger:   logger,
		timeout:  cfg.Timeout,
		workers:  cfg.Workers,
		queue:    make(chan domain.AssignmentIntent, cfg.QueueSize),
	}
}

// Start запускает обработчики очереди. Повторный вызов ничего не делает.
func (c *Committer) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started || c.stopped {
		return
	}
	c.started = true

	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker(i)
	}
}

// Enqueue ставит намерение в очередь. Возвращает false, если очередь
// заполнена или Committer остановлен.
func (c *Committer) Enqueue(intent domain.AssignmentIntent) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.stopped {
		c.drop(intent, "committer stopped")
		return false
	}

	select {
	case c.queue <- intent:
		return true
	default:
		c.drop(intent, "queue full")
		return false
	}
}

// Stop перестает принимать намерения, дожидается обработки очереди
// и завершения обработчиков либо отмены ctx.
func (c *Committer) Stop(ctx context.Context) error {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return nil
	}
	c.stopped = true
	close(c.queue)
	started := c.started
	c.mu.Unlock()

	if !started {
		// Без обработчиков очередь разбирается здесь
		for intent := range c.queue {
			c.commit(intent)
		}
		return nil
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Committer) worker(id int) {
	defer c.wg.Done()

	for intent := range c.queue {
		c.commit(intent)
	}

	c.logger.WithField("worker", id).Debug("Committer worker stopped")
}

func (c *Committer) commit(intent domain.AssignmentIntent) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	entry := c.logger.WithFields(logrus.Fields{
		"tournament_id": intent.TournamentID,
		"team_id":       intent.TeamID,
		"pool_name":     poolLabel(intent.PoolName),
	})

	if _, err := c.assigner.AssignPool(ctx, intent.TournamentID, intent.TeamID, intent.PoolName); err != nil {
		c.metrics.RecordCommit(domain.CommitResultFailed)
		entry.WithError(err).Error("Failed to commit pool assignment")
		return
	}

	c.metrics.RecordCommit(domain.CommitResultOK)
	entry.Info("Pool assignment committed")
}

func (c *Committer) drop(intent domain.AssignmentIntent, reason string) {
	c.metrics.RecordCommit(domain.CommitResultDropped)
	c.logger.WithFields(logrus.Fields{
		"tournament_id": intent.TournamentID,
		"team_id":       intent.TeamID,
		"reason":        reason,
	}).Warn("Pool assignment dropped")
}

func poolLabel(poolName *string) string {
	if poolName == nil {
		return "<unassigned>"
	}
	return *poolName
}
