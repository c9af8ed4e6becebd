package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Log      LogConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName          string   `env:"APP_NAME,required"`
	Environment      string   `env:"APP_ENV,required"`
	HTTPPort         string   `env:"HTTP_PORT,required"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

type LogConfig struct {
	JSON  bool `env:"LOG_JSON"`
	Debug bool `env:"LOG_DEBUG"`
}

type StoreConfig struct {
	Backend       string `env:"STORE_BACKEND" envDefault:"memory"`
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"migrations"`
}

type DatabaseConfig struct {
	DBHost     string `env:"DB_HOST"`
	DBPort     string `env:"DB_PORT"`
	DBName     string `env:"DB_NAME"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	ConnectTimeout        time.Duration `env:"DB_CONNECT_TIMEOUT"`
	PoolMaxConns          int32         `env:"DB_POOL_MAX_CONNS"`
	PoolMinConns          int32         `env:"DB_POOL_MIN_CONNS"`
	PoolMaxConnLifetime   time.Duration `env:"DB_POOL_MAX_CONN_LIFETIME"`
	PoolMaxConnIdleTime   time.Duration `env:"DB_POOL_MAX_CONN_IDLE_TIME"`
	PoolHealthCheckPeriod time.Duration `env:"DB_POOL_HEALTH_CHECK_PERIOD"`
}

type RedisConfig struct {
	Enabled    bool   `env:"REDIS_ENABLED"`
	Host       string `env:"REDIS_HOST" envDefault:"localhost"`
	Port       string `env:"REDIS_PORT" envDefault:"6379"`
	Password   string `env:"REDIS_PASSWORD"`
	TTLSeconds int    `env:"REDIS_TTL" envDefault:"600"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", strings.TrimSpace(r.Host), strings.TrimSpace(r.Port))
}

func (r RedisConfig) TTL() time.Duration {
	if r.TTLSeconds <= 0 {
		return 600 * time.Second
	}
	return time.Duration(r.TTLSeconds) * time.Second
}

var (
	errInvalidEnv          = errors.New("invalid environment configuration")
	errUnknownStoreBackend = errors.New("unknown STORE_BACKEND")
	errMissingDatabaseEnv  = errors.New("postgres store requires DB_HOST, DB_PORT, DB_NAME and DB_USER")
)

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errInvalidEnv, err)
	}

	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	switch cfg.Store.Backend {
	case StoreMemory:
	case StorePostgres:
		d := cfg.Database
		if d.DBHost == "" || d.DBPort == "" || d.DBName == "" || d.DBUser == "" {
			return Config{}, errMissingDatabaseEnv
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", errUnknownStoreBackend, cfg.Store.Backend)
	}

	return cfg, nil
}
