package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string
	LogLevel   string

	// Редактор групп
	SessionTTL      time.Duration
	SweepInterval   time.Duration
	CommitQueueSize int
	CommitWorkers   int
	CommitTimeout   time.Duration

	// События (пустой URL отключает публикацию)
	NATSURL           string
	NATSSubjectPrefix string
}

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "athletica_grouping"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		SessionTTL:      getEnvDuration("SESSION_TTL", 30*time.Minute),
		SweepInterval:   getEnvDuration("SESSION_SWEEP_INTERVAL", time.Minute),
		CommitQueueSize: getEnvInt("COMMIT_QUEUE_SIZE", 256),
		CommitWorkers:   getEnvInt("COMMIT_WORKERS", 2),
		CommitTimeout:   getEnvDuration("COMMIT_TIMEOUT", 5*time.Second),

		NATSURL:           getEnv("NATS_URL", ""),
		NATSSubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "grouping"),
	}, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
