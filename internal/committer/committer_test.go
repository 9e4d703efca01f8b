package committer_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"grouping-service/internal/committer"
	"grouping-service/internal/domain"
	"grouping-service/internal/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingMetrics struct {
	mu      sync.Mutex
	commits map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{commits: map[string]int{}}
}

func (m *countingMetrics) RecordDrop(string) {}

func (m *countingMetrics) RecordCommit(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commits[result]++
}

func (m *countingMetrics) SetActiveSessions(int) {}

func (m *countingMetrics) count(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commits[result]
}

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCommitter_CommitsQueuedIntents(t *testing.T) {
	assigner := &mocks.PoolAssignmentUseCase{}
	collector := newCountingMetrics()
	pool := "Pool A"

	assigner.On("AssignPool", mock.Anything, "tour-1", "t1", &pool).Return(&domain.Team{ID: "t1"}, nil).Once()
	assigner.On("AssignPool", mock.Anything, "tour-1", "t2", (*string)(nil)).Return(nil, errors.New("db down")).Once()

	c := committer.New(assigner, collector, silentLogger(), committer.Config{QueueSize: 4, Workers: 2, Timeout: time.Second})
	c.Start()

	assert.True(t, c.Enqueue(domain.AssignmentIntent{TournamentID: "tour-1", TeamID: "t1", PoolName: &pool}))
	assert.True(t, c.Enqueue(domain.AssignmentIntent{TournamentID: "tour-1", TeamID: "t2"}))

	require.NoError(t, c.Stop(context.Background()))

	assigner.AssertExpectations(t)
	assert.Equal(t, 1, collector.count(domain.CommitResultOK))
	assert.Equal(t, 1, collector.count(domain.CommitResultFailed))
}

func TestCommitter_EnqueueNeverBlocks(t *testing.T) {
	assigner := &mocks.PoolAssignmentUseCase{}
	collector := newCountingMetrics()
	assigner.On("AssignPool", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(&domain.Team{}, nil)

	// Обработчики не запущены, очередь на один элемент
	c := committer.New(assigner, collector, silentLogger(), committer.Config{QueueSize: 1, Workers: 1})

	assert.True(t, c.Enqueue(domain.AssignmentIntent{TournamentID: "tour-1", TeamID: "t1"}))
	assert.False(t, c.Enqueue(domain.AssignmentIntent{TournamentID: "tour-1", TeamID: "t2"}))
	assert.Equal(t, 1, collector.count(domain.CommitResultDropped))

	require.NoError(t, c.Stop(context.Background()))
	assigner.AssertNumberOfCalls(t, "AssignPool", 1)
}

func TestCommitter_EnqueueAfterStop(t *testing.T) {
	assigner := &mocks.PoolAssignmentUseCase{}
	collector := newCountingMetrics()
	c := committer.New(assigner, collector, silentLogger(), committer.Config{QueueSize: 2, Workers: 1})
	c.Start()

	require.NoError(t, c.Stop(context.Background()))
	require.NoError(t, c.Stop(context.Background()))

	assert.False(t, c.Enqueue(domain.AssignmentIntent{TournamentID: "tour-1", TeamID: "t1"}))
	assert.Equal(t, 1, collector.count(domain.CommitResultDropped))
	assigner.AssertNotCalled(t, "AssignPool", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCommitter_StopHonoursContext(t *testing.T) {
	assigner := &mocks.PoolAssignmentUseCase{}
	release := make(chan struct{})
	finished := make(chan struct{})
	assigner.On("AssignPool", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			<-release
			close(finished)
		}).
		Return(&domain.Team{}, nil)

	c := committer.New(assigner, newCountingMetrics(), silentLogger(), committer.Config{QueueSize: 1, Workers: 1})
	c.Start()
	require.True(t, c.Enqueue(domain.AssignmentIntent{TournamentID: "tour-1", TeamID: "t1"}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Отпускаем обработчик, чтобы goleak не нашел висящих горутин
	close(release)
	select {
	case <-finished:
	case <-time.After(time.Second):
		require.Fail(t, "assignment was not released")
	}
}
