package domain

import (
	"context"
	"time"
)

// AssignmentIntent - намерение переназначить команду, которое редактор
// отдает наружу. Nil в PoolName означает снятие команды с пула.
type AssignmentIntent struct {
	TournamentID string
	TeamID       string
	PoolName     *string
}

// PoolAssignedEvent публикуется после сохранения назначения.
type PoolAssignedEvent struct {
	EventID      string    `json:"event_id"`
	TournamentID string    `json:"tournament_id"`
	TeamID       string    `json:"team_id"`
	PoolName     *string   `json:"pool_name"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// EventPublisher определяет контракт публикации доменных событий.
type EventPublisher interface {
	PublishPoolAssigned(ctx context.Context, event *PoolAssignedEvent) error
	Close() error
}
