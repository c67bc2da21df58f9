package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Lifecycle Config
	GeofenceRadiusMeters float64 `env:"GEOFENCE_RADIUS_METERS" envDefault:"30"`
	RewardPoints         int     `env:"REWARD_POINTS" envDefault:"100"`

	// Push gateway Config
	PushGatewayURL     string        `env:"PUSH_GATEWAY_URL"`
	PushGatewaySecret  string        `env:"PUSH_GATEWAY_SECRET"`
	PushGatewayTimeout time.Duration `env:"PUSH_GATEWAY_TIMEOUT" envDefault:"5s"`
	PushMaxAttempts    int           `env:"PUSH_MAX_ATTEMPTS" envDefault:"1"`
	PushBaseDelay      time.Duration `env:"PUSH_BASE_DELAY" envDefault:"1s"`

	// Предел одной публикации в очередь уведомлений
	NotifyPublishTimeout time.Duration `env:"NOTIFY_PUBLISH_TIMEOUT" envDefault:"500ms"`

	// Image classifier Config
	ClassifierURL     string        `env:"CLASSIFIER_URL"`
	ClassifierTimeout time.Duration `env:"CLASSIFIER_TIMEOUT" envDefault:"20s"`

	// Region Config
	RegionCacheTTL time.Duration `env:"REGION_CACHE_TTL" envDefault:"24h"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		StorageDriver:        getEnv("STORAGE_DRIVER", StorageDriverPostgres),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		GeofenceRadiusMeters: getEnvAsFloat("GEOFENCE_RADIUS_METERS", 30),
		RewardPoints:         getEnvAsInt("REWARD_POINTS", 100),
		PushGatewayURL:       os.Getenv("PUSH_GATEWAY_URL"),
		PushGatewaySecret:    os.Getenv("PUSH_GATEWAY_SECRET"),
		PushGatewayTimeout:   getEnvAsDuration("PUSH_GATEWAY_TIMEOUT", 5*time.Second),
		PushMaxAttempts:      getEnvAsInt("PUSH_MAX_ATTEMPTS", 1),
		PushBaseDelay:        getEnvAsDuration("PUSH_BASE_DELAY", time.Second),
		NotifyPublishTimeout: getEnvAsDuration("NOTIFY_PUBLISH_TIMEOUT", 500*time.Millisecond),
		ClassifierURL:        os.Getenv("CLASSIFIER_URL"),
		ClassifierTimeout:    getEnvAsDuration("CLASSIFIER_TIMEOUT", 20*time.Second),
		RegionCacheTTL:       getEnvAsDuration("REGION_CACHE_TTL", 24*time.Hour),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность значений конфигурации
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.GeofenceRadiusMeters <= 0 {
		return fmt.Errorf("GEOFENCE_RADIUS_METERS must be positive, got %v", c.GeofenceRadiusMeters)
	}
	if c.RewardPoints <= 0 {
		return fmt.Errorf("REWARD_POINTS must be positive, got %d", c.RewardPoints)
	}
	if c.PushMaxAttempts < 1 {
		c.PushMaxAttempts = 1
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
