package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides, e.g. FLATFINDER_SERVER_PORT.
const EnvPrefix = "FLATFINDER"

// DefaultStartDate is the first day of the generated demonstration month.
const DefaultStartDate = "2025-04-01"

// DefaultFlexibilityDays is the search window half-width when none is configured.
const DefaultFlexibilityDays = 2

// Config represents the overall application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Log       LogConfig       `yaml:"log" envconfig:"LOG"`
	Dataset   DatasetConfig   `yaml:"dataset" envconfig:"DATASET"`
	Database  DatabaseConfig  `yaml:"database" envconfig:"DATABASE"`
	SearchLog SearchLogConfig `yaml:"search_log" envconfig:"SEARCH_LOG"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT"`
	RateLimitPerSec float64       `yaml:"rate_limit_per_sec" envconfig:"RATE_LIMIT_PER_SEC"`
	RateLimitBurst  int           `yaml:"rate_limit_burst" envconfig:"RATE_LIMIT_BURST"`
	CacheTTLSeconds int           `yaml:"cache_ttl_seconds" envconfig:"CACHE_TTL_SECONDS"`
	CacheTTL        time.Duration `yaml:"-" ignored:"true"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Pretty bool   `yaml:"pretty" envconfig:"PRETTY"`
}

// DatasetConfig controls the generated availability calendar.
type DatasetConfig struct {
	StartDate       string    `yaml:"start_date" envconfig:"START_DATE"`
	Start           time.Time `yaml:"-" ignored:"true"`
	Seed            uint64    `yaml:"seed" envconfig:"SEED"`
	Flexibility     *int      `yaml:"flexibility_days" envconfig:"FLEXIBILITY_DAYS"`
	FlexibilityDays int       `yaml:"-" ignored:"true"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Enabled                bool   `yaml:"enabled" envconfig:"ENABLED"`
	Driver                 string `yaml:"driver" envconfig:"DRIVER"`
	DSN                    string `yaml:"dsn" envconfig:"DSN"`
	MaxOpenConns           int    `yaml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns           int    `yaml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes" envconfig:"CONN_MAX_LIFETIME_MINUTES"`
}

// SearchLogConfig holds the configuration for the search log worker pool.
type SearchLogConfig struct {
	Workers   int `yaml:"workers" envconfig:"WORKERS"`
	QueueSize int `yaml:"queue_size" envconfig:"QUEUE_SIZE"`
}

// Load reads the configuration from the given path and applies environment overrides.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}
	cfg.Server.CacheTTL = time.Duration(cfg.Server.CacheTTLSeconds) * time.Second

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Dataset.StartDate == "" {
		cfg.Dataset.StartDate = DefaultStartDate
	}
	start, err := time.Parse(time.DateOnly, cfg.Dataset.StartDate)
	if err != nil {
		return fmt.Errorf("invalid dataset.start_date %q: %w", cfg.Dataset.StartDate, err)
	}
	cfg.Dataset.Start = start

	switch {
	case cfg.Dataset.Flexibility == nil:
		cfg.Dataset.FlexibilityDays = DefaultFlexibilityDays
	case *cfg.Dataset.Flexibility < 0:
		log.Warn().Int("flexibility_days", *cfg.Dataset.Flexibility).Msg("dataset.flexibility_days is negative; defaulting to 2")
		cfg.Dataset.FlexibilityDays = DefaultFlexibilityDays
	default:
		cfg.Dataset.FlexibilityDays = *cfg.Dataset.Flexibility
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}

	if cfg.SearchLog.Workers <= 0 {
		log.Warn().Msg("search_log.workers is not set or invalid; defaulting to 1")
		cfg.SearchLog.Workers = 1
	}
	if cfg.SearchLog.QueueSize <= 0 {
		cfg.SearchLog.QueueSize = 64
	}

	return nil
}
