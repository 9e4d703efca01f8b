package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grouping-service/internal/domain"
	"grouping-service/internal/events"
)

func startEmbeddedNATS(t *testing.T) *nats.Conn {
	t.Helper()

	srv, err := server.NewServer(&server.Options{
		Host:   "127.0.0.1",
		Port:   -1,
		NoLog:  true,
		NoSigs: true,
	})
	require.NoError(t, err)

	go srv.Start()
	if !srv.ReadyForConnections(10 * time.Second) {
		t.Fatal("NATS server not ready")
	}

	nc, err := nats.Connect(srv.ClientURL())
	require.NoError(t, err)

	t.Cleanup(func() {
		nc.Close()
		srv.Shutdown()
		srv.WaitForShutdown()
	})

	return nc
}

func TestNATSPublisher_PublishPoolAssigned(t *testing.T) {
	nc := startEmbeddedNATS(t)

	sub, err := nc.SubscribeSync("grouping.pool.assigned")
	require.NoError(t, err)
	require.NoError(t, nc.Flush())

	publisher := events.NewNATSPublisherWithConn(nc, "grouping")
	pool := "Pool A"
	event := &domain.PoolAssignedEvent{
		EventID:      "e1",
		TournamentID: "tour-1",
		TeamID:       "t1",
		PoolName:     &pool,
		AssignedAt:   time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishPoolAssigned(context.Background(), event))
	require.NoError(t, publisher.Close())

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)

	var received domain.PoolAssignedEvent
	require.NoError(t, json.Unmarshal(msg.Data, &received))
	assert.Equal(t, "t1", received.TeamID)
	require.NotNil(t, received.PoolName)
	assert.Equal(t, "Pool A", *received.PoolName)
	assert.True(t, event.AssignedAt.Equal(received.AssignedAt))
}

func TestNATSPublisher_UnassignPublishesNullPool(t *testing.T) {
	nc := startEmbeddedNATS(t)

	sub, err := nc.SubscribeSync("pool.assigned")
	require.NoError(t, err)
	require.NoError(t, nc.Flush())

	publisher := events.NewNATSPublisherWithConn(nc, "")
	require.NoError(t, publisher.PublishPoolAssigned(context.Background(), &domain.PoolAssignedEvent{
		EventID:      "e2",
		TournamentID: "tour-1",
		TeamID:       "t2",
	}))
	require.NoError(t, publisher.Close())

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)
	assert.Contains(t, string(msg.Data), `"pool_name":null`)
}

func TestNATSPublisher_CancelledContext(t *testing.T) {
	nc := startEmbeddedNATS(t)
	publisher := events.NewNATSPublisherWithConn(nc, "grouping")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := publisher.PublishPoolAssigned(ctx, &domain.PoolAssignedEvent{TeamID: "t1"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "grouping.pool.assigned", events.Subject("grouping", events.SubjectPoolAssigned))
	assert.Equal(t, "pool.assigned", events.Subject("", events.SubjectPoolAssigned))
}

func TestNopPublisher(t *testing.T) {
	var publisher domain.EventPublisher = events.NopPublisher{}

	assert.NoError(t, publisher.PublishPoolAssigned(context.Background(), &domain.PoolAssignedEvent{}))
	assert.NoError(t, publisher.Close())
}
