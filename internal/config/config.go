package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis Config
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	TableStateTTL time.Duration `env:"TABLE_STATE_TTL" envDefault:"12h"`

	// Firestore Config
	FirestoreProjectID       string        `env:"FIRESTORE_PROJECT_ID"`
	FirestoreDatabaseID      string        `env:"FIRESTORE_DATABASE_ID" envDefault:"(default)"`
	FirestoreCollection      string        `env:"FIRESTORE_COLLECTION" envDefault:"incidents"`
	FirestoreCredentialsFile string        `env:"FIRESTORE_CREDENTIALS_FILE"`
	RemoteTimeout            time.Duration `env:"REMOTE_TIMEOUT" envDefault:"5s"`
	RemoteListLimit          int           `env:"REMOTE_LIST_LIMIT" envDefault:"200"`

	// Повторное удаление из удаленного хранилища
	CleanupMaxRetries int           `env:"CLEANUP_MAX_RETRIES" envDefault:"5"`
	CleanupBaseDelay  time.Duration `env:"CLEANUP_BASE_DELAY" envDefault:"2s"`

	// Report Config
	ChromePath    string        `env:"CHROME_PATH" envDefault:"chromium"`
	ReportTimeout time.Duration `env:"REPORT_TIMEOUT" envDefault:"30s"`
	MapboxToken   string        `env:"MAPBOX_TOKEN"`

	// Часовой пояс для даты "сегодня" по умолчанию
	Location *time.Location `env:"APP_TIMEZONE" envDefault:"UTC"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Разрешенные источники CORS; пусто - любой
	CORSOrigins []string `env:"CORS_ORIGINS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		HTTPPort:                 getEnv("HTTP_PORT", "8080"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		MigrationsPath:           getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                os.Getenv("REDIS_PASSWORD"),
		RedisDB:                  getEnvAsInt("REDIS_DB", 0),
		CacheTTL:                 getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		TableStateTTL:            getEnvAsDuration("TABLE_STATE_TTL", 12*time.Hour),
		FirestoreProjectID:       os.Getenv("FIRESTORE_PROJECT_ID"),
		FirestoreDatabaseID:      getEnv("FIRESTORE_DATABASE_ID", "(default)"),
		FirestoreCollection:      getEnv("FIRESTORE_COLLECTION", "incidents"),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		RemoteTimeout:            getEnvAsDuration("REMOTE_TIMEOUT", 5*time.Second),
		RemoteListLimit:          getEnvAsInt("REMOTE_LIST_LIMIT", 200),
		CleanupMaxRetries:        getEnvAsInt("CLEANUP_MAX_RETRIES", 5),
		CleanupBaseDelay:         getEnvAsDuration("CLEANUP_BASE_DELAY", 2*time.Second),
		ChromePath:               getEnv("CHROME_PATH", "chromium"),
		ReportTimeout:            getEnvAsDuration("REPORT_TIMEOUT", 30*time.Second),
		MapboxToken:              os.Getenv("MAPBOX_TOKEN"),
	}

	loc, err := time.LoadLocation(getEnv("APP_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("неверный APP_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	// Загрузка API ключей
	cfg.APIKeys = getEnvAsList("API_KEYS")
	cfg.CORSOrigins = getEnvAsList("CORS_ORIGINS")

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// Today возвращает текущую дату в часовом поясе приложения в формате YYYY-MM-DD
func (c *Config) Today() string {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format("2006-01-02")
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

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список значений, разделенных запятыми
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
