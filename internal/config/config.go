package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// StoreBackend selects where the booking collection persists.
type StoreBackend string

const (
	StoreMemory   StoreBackend = "memory"
	StoreFile     StoreBackend = "file"
	StoreRedis    StoreBackend = "redis"
	StorePostgres StoreBackend = "postgres"
)

type Config struct {
	Store    StoreConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Search   SearchConfig
	Payment  PaymentConfig
}

type StoreConfig struct {
	Backend StoreBackend
	FileDir string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PostgresConfig struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     int
	SSLMode  string
}

type SearchConfig struct {
	CacheCapacity int
	SearchDelay   time.Duration
	SeatLoadDelay time.Duration
	Seed          int64
}

type PaymentConfig struct {
	Currency string
	// Decline makes the sandbox gateway refuse every checkout; used to
	// exercise the failure path from the demo.
	Decline bool
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	backend := StoreBackend(envStr("STORE_BACKEND", string(StoreFile)))
	switch backend {
	case StoreMemory, StoreFile, StoreRedis, StorePostgres:
	default:
		return nil, fmt.Errorf("%s: unknown STORE_BACKEND %q", op, backend)
	}

	fileDir := envStr("STORE_FILE_DIR", "data")

	redisDB, err := envInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	redisCfg := RedisConfig{
		Addr:     envStr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	}

	pgPort, err := envInt("POSTGRES_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pgCfg := PostgresConfig{
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Name:     os.Getenv("POSTGRES_DB"),
		Host:     envStr("POSTGRES_HOST", "localhost"),
		Port:     pgPort,
		SSLMode:  envStr("POSTGRES_SSLMODE", "disable"),
	}

	if backend == StorePostgres {
		if pgCfg.User == "" {
			return nil, fmt.Errorf("%s: missing POSTGRES_USER", op)
		}
		if pgCfg.Password == "" {
			return nil, fmt.Errorf("%s: missing POSTGRES_PASSWORD", op)
		}
		if pgCfg.Name == "" {
			return nil, fmt.Errorf("%s: missing POSTGRES_DB", op)
		}
	}

	capacity, err := envInt("SEARCH_CACHE_CAPACITY", 32)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	searchDelayMs, err := envInt("SEARCH_DELAY_MS", 1500)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	seatDelayMs, err := envInt("SEAT_LOAD_DELAY_MS", 500)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	seed, err := envInt64("INVENTORY_SEED", 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Config{
		Store:    StoreConfig{Backend: backend, FileDir: fileDir},
		Redis:    redisCfg,
		Postgres: pgCfg,
		Search: SearchConfig{
			CacheCapacity: capacity,
			SearchDelay:   time.Duration(searchDelayMs) * time.Millisecond,
			SeatLoadDelay: time.Duration(seatDelayMs) * time.Millisecond,
			Seed:          seed,
		},
		Payment: PaymentConfig{
			Currency: envStr("PAYMENT_CURRENCY", "INR"),
			Decline:  os.Getenv("PAYMENT_DECLINE") == "true",
		},
	}, nil
}

// DSN assembles the postgres connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
