package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-CareSlotService/internal/catalogue"
	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

const envPrefix = "CARESLOTS_"

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMongo    = "mongo"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Store     StoreConfig     `toml:"store"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Mongo     MongoConfig     `toml:"mongo"`
	Catalogue CatalogueConfig `toml:"catalogue"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StoreConfig struct {
	Driver      string `toml:"driver"`
	SeedOnStart bool   `toml:"seed_on_start"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	Migrate         bool   `toml:"migrate"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	Namespace string `toml:"namespace"`
}

type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
	Timeout    int    `toml:"timeout"`
}

func (m MongoConfig) TimeoutDuration() time.Duration {
	return time.Duration(m.Timeout) * time.Second
}

type CatalogueConfig struct {
	Carers          []string `toml:"carers"`
	Dates           []string `toml:"dates"`
	StartHour       int      `toml:"start_hour"`
	EndHour         int      `toml:"end_hour"`
	IntervalMinutes int      `toml:"interval_minutes"`
	Concurrency     int      `toml:"concurrency"`
}

func (c CatalogueConfig) ToSpec() domain.CatalogueSpec {
	return domain.CatalogueSpec{
		Carers:          append([]string(nil), c.Carers...),
		Dates:           append([]string(nil), c.Dates...),
		StartHour:       c.StartHour,
		EndHour:         c.EndHour,
		IntervalMinutes: c.IntervalMinutes,
	}
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Default returns a configuration that runs the reference catalogue on the
// in-memory store.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "careslots",
		},
		Store: StoreConfig{Driver: DriverMemory, SeedOnStart: true},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "careslots",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			Migrate:         true,
		},
		Redis: RedisConfig{Addr: "localhost:6379", Namespace: "default"},
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   "careslots",
			Collection: "care_slots",
			Timeout:    5,
		},
		Catalogue: CatalogueConfig{
			Carers:          append([]string(nil), domain.DefaultCarers...),
			Dates:           append([]string(nil), domain.DefaultDates...),
			StartHour:       domain.DefaultStartHour,
			EndHour:         domain.DefaultEndHour,
			IntervalMinutes: domain.DefaultIntervalMinutes,
			Concurrency:     16,
		},
		CORS:      CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: RateLimitConfig{Enabled: false, RPS: 50, Burst: 100},
	}
}

// Load reads path on top of Default, then a .env file next to the
// working directory (if any), then CARESLOTS_* environment variables.
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var errs []error

	setString := func(name string, dst *string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}
	setInt := func(name string, dst *int) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	setBool := func(name string, dst *bool) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	setList := func(name string, dst *[]string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = splitList(v)
		}
	}

	setInt("HTTP_PORT", &c.Server.HTTPPort)
	setString("LOG_LEVEL", &c.Logs.Level)
	setString("LOG_FILE", &c.Logs.File)
	setBool("METRICS_ENABLED", &c.Metrics.Enabled)

	setString("STORE_DRIVER", &c.Store.Driver)
	setBool("SEED_ON_START", &c.Store.SeedOnStart)

	setString("DB_HOST", &c.Database.Host)
	setInt("DB_PORT", &c.Database.Port)
	setString("DB_USER", &c.Database.User)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("DB_NAME", &c.Database.DBName)
	setString("DB_SSLMODE", &c.Database.SSLMode)

	setString("REDIS_ADDR", &c.Redis.Addr)
	setString("REDIS_PASSWORD", &c.Redis.Password)
	setInt("REDIS_DB", &c.Redis.DB)
	setString("REDIS_NAMESPACE", &c.Redis.Namespace)

	setString("MONGO_URI", &c.Mongo.URI)
	setString("MONGO_DATABASE", &c.Mongo.Database)

	setList("CARERS", &c.Catalogue.Carers)
	setList("DATES", &c.Catalogue.Dates)

	setBool("RATE_LIMIT_ENABLED", &c.RateLimit.Enabled)

	return errors.Join(errs...)
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Store.Driver {
	case DriverMemory, DriverPostgres, DriverRedis, DriverMongo:
	default:
		return fmt.Errorf("%w: unknown store.driver %q", ErrInvalidConfig, c.Store.Driver)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}
	if c.Catalogue.Concurrency <= 0 {
		return fmt.Errorf("%w: catalogue.concurrency must be positive", ErrInvalidConfig)
	}
	if err := catalogue.Validate(c.Catalogue.ToSpec()); err != nil {
		return fmt.Errorf("%w: catalogue: %v", ErrInvalidConfig, err)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be positive", ErrInvalidConfig)
	}
	return nil
}
