package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMinIO    = "minio"

	CatalogEmbedded = "embedded"
	CatalogFile     = "file"
	CatalogPostgres = "postgres"
)

type Config struct {
	Port            string
	AllowOrigins    []string
	AppEnv          string
	LogLevel        string
	LogFormat       string
	LogstashTCPAddr string
	// Logstash reconnect timing.
	LogstashDialTimeout time.Duration
	LogstashMinBackoff  time.Duration
	LogstashMaxBackoff  time.Duration

	StorageDriver  string
	SQLitePath     string
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	MinIOEndpoint    string
	MinIOAccessKey   string
	MinIOSecretKey   string
	MinIOUseSSL      bool
	MinIOBucketSlots string

	CatalogSource string
	CatalogFile   string

	FavoritesSlotKey string
	ReviewsSlotKey   string

	EnableSwagger bool
	EnableMetrics bool

	// Warnings are non-fatal problems found while loading, for the caller to
	// log once a logger exists.
	Warnings []string
}

// Load reads .env when present and then the process environment. It never
// fails; call Validate before using the result.
func Load() Config {
	var warnings []string
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		warnings = append(warnings, fmt.Sprintf("could not read .env: %v", err))
	}

	redisDB, err := strconv.Atoi(getenv("REDIS_DB", "0"))
	if err != nil || redisDB < 0 {
		redisDB = -1
	}

	cfg := Config{
		Port:            getenv("PORT", "8080"),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		AppEnv:          getenv("APP_ENV", "development"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", ""),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),

		LogstashDialTimeout: durationEnv("LOGSTASH_DIAL_TIMEOUT", 2*time.Second, &warnings),
		LogstashMinBackoff:  durationEnv("LOGSTASH_RETRY_MIN", time.Second, &warnings),
		LogstashMaxBackoff:  durationEnv("LOGSTASH_RETRY_MAX", 30*time.Second, &warnings),

		StorageDriver:    strings.ToLower(getenv("STORAGE_DRIVER", StorageSQLite)),
		SQLitePath:       getenv("SQLITE_PATH", "data/zimtour.db"),
		DatabaseURL:      getenv("DATABASE_URL", ""),
		RedisAddr:        getenv("REDIS_ADDR", ""),
		RedisPassword:    getenv("REDIS_PASSWORD", ""),
		RedisDB:          redisDB,
		RedisKeyPrefix:   getenv("REDIS_KEY_PREFIX", "zimtour:"),
		MinIOEndpoint:    getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:   getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:   getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:      getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketSlots: getenv("MINIO_BUCKET_SLOTS", "zimtour-slots"),
		CatalogSource:    strings.ToLower(getenv("CATALOG_SOURCE", CatalogEmbedded)),
		CatalogFile:      getenv("CATALOG_FILE", ""),
		FavoritesSlotKey: getenv("FAVORITES_SLOT_KEY", "zimbabweTourismFavorites"),
		ReviewsSlotKey:   getenv("REVIEWS_SLOT_KEY", "zimbabweTourismReviews"),
		EnableSwagger:    getenv("ENABLE_SWAGGER", "true") == "true",
		EnableMetrics:    getenv("ENABLE_METRICS", "true") == "true",
	}
	cfg.Warnings = warnings
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
		if cfg.IsProduction() {
			cfg.LogFormat = "json"
		}
	}
	return cfg
}

// Validate reports every missing setting the chosen drivers need.
func (c Config) Validate() error {
	var errs []error

	switch c.StorageDriver {
	case StorageMemory:
	case StorageSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			errs = append(errs, missing("SQLITE_PATH"))
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, missing("DATABASE_URL"))
		}
	case StorageRedis:
		if c.RedisAddr == "" {
			errs = append(errs, missing("REDIS_ADDR"))
		}
		if c.RedisDB < 0 {
			errs = append(errs, errors.New("REDIS_DB must be a non-negative integer"))
		}
	case StorageMinIO:
		for k, v := range map[string]string{
			"MINIO_ENDPOINT":     c.MinIOEndpoint,
			"MINIO_ACCESS_KEY":   c.MinIOAccessKey,
			"MINIO_SECRET_KEY":   c.MinIOSecretKey,
			"MINIO_BUCKET_SLOTS": c.MinIOBucketSlots,
		} {
			if v == "" {
				errs = append(errs, missing(k))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver))
	}

	switch c.CatalogSource {
	case CatalogEmbedded:
	case CatalogFile:
		if c.CatalogFile == "" {
			errs = append(errs, missing("CATALOG_FILE"))
		}
	case CatalogPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, missing("DATABASE_URL"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported CATALOG_SOURCE %q", c.CatalogSource))
	}

	if c.FavoritesSlotKey == "" || c.ReviewsSlotKey == "" {
		errs = append(errs, errors.New("slot keys must not be empty"))
	} else if c.FavoritesSlotKey == c.ReviewsSlotKey {
		errs = append(errs, errors.New("FAVORITES_SLOT_KEY and REVIEWS_SLOT_KEY must differ"))
	}

	return errors.Join(errs...)
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func missing(k string) error {
	return fmt.Errorf("missing env: %s", k)
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// durationEnv parses a Go duration, keeping d and recording a warning when
// the value is malformed.
func durationEnv(k string, d time.Duration, warnings *[]string) time.Duration {
	raw := os.Getenv(k)
	if raw == "" {
		return d
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		*warnings = append(*warnings, fmt.Sprintf("invalid %s %q, using %s", k, raw, d))
		return d
	}
	return v
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
