package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Session    SessionConfig
	Kafka      KafkaConfig
	Features   FeatureConfig
	Migrations MigrationsConfig
	Locale     LocaleConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	DSN        string
	MaxRetries int
}

type RedisConfig struct {
	Addr string
}

type SessionConfig struct {
	CookieName string
	Secret     string
	TTL        time.Duration
}

type KafkaConfig struct {
	Brokers  []string
	Enabled  bool
	MockMode bool
	Topics   TopicConfig
}

type TopicConfig struct {
	UserRegistered string
	EventSignup    string
}

// FeatureConfig collapses the historical app variants into one binary:
// the admin panel and locale support each shipped in only one of them.
type FeatureConfig struct {
	AdminPanel   bool
	Localization bool
}

type MigrationsConfig struct {
	Dir  string
	Auto bool
}

type LocaleConfig struct {
	Default string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":3000"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:        getEnv("POSTGRES_DSN", "postgres://localhost:5432/eventboard?sslmode=disable"),
			MaxRetries: getEnvInt("DB_CONNECT_RETRIES", 5),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "eventboard_session"),
			Secret:     getEnv("SESSION_SECRET", "secret-key"),
			TTL:        time.Duration(getEnvInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		},
		Kafka: KafkaConfig{
			Brokers:  strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Enabled:  getEnvBool("KAFKA_ENABLED", false),
			MockMode: getEnvBool("KAFKA_MOCK_MODE", false),
			Topics: TopicConfig{
				UserRegistered: getEnv("KAFKA_TOPIC_USER_REGISTERED", "eventboard.user.registered"),
				EventSignup:    getEnv("KAFKA_TOPIC_EVENT_SIGNUP", "eventboard.event.signup"),
			},
		},
		Features: FeatureConfig{
			AdminPanel:   getEnvBool("FEATURE_ADMIN_PANEL", true),
			Localization: getEnvBool("FEATURE_LOCALIZATION", true),
		},
		Migrations: MigrationsConfig{
			Dir:  getEnv("MIGRATIONS_DIR", "./migrations"),
			Auto: getEnvBool("AUTO_MIGRATE", true),
		},
		Locale: LocaleConfig{
			Default: getEnv("DEFAULT_LOCALE", "en"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
