package config_test

import (
	"testing"
	"time"

	"grouping-service/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("COMMIT_WORKERS", "")

	cfg, _ := config.LoadConfig()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 2, cfg.CommitWorkers)
	assert.Empty(t, cfg.NATSURL)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("SESSION_TTL", "90s")
	t.Setenv("COMMIT_WORKERS", "4")
	t.Setenv("COMMIT_QUEUE_SIZE", "not-a-number")
	t.Setenv("NATS_URL", "nats://localhost:4222")

	cfg, _ := config.LoadConfig()

	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, 90*time.Second, cfg.SessionTTL)
	assert.Equal(t, 4, cfg.CommitWorkers)
	assert.Equal(t, 256, cfg.CommitQueueSize)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSURL)
}
