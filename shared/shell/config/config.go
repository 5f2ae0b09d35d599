package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"

	PostgresClientPGX   = "pgx"
	PostgresClientSQLDB = "sqldb"
	PostgresClientSQLX  = "sqlx"
)

var (
	ErrUnknownStorageDriver  = errors.New("unknown storage driver")
	ErrUnknownPostgresClient = errors.New("unknown postgres client")
	ErrMissingPostgresDSN    = errors.New("postgres dsn is required for the postgres storage driver")
	ErrMissingSQLitePath     = errors.New("sqlite path is required for the sqlite storage driver")
	ErrInvalidPricing        = errors.New("ticket price or fee percent out of range")
	ErrInvalidRetryAttempts  = errors.New("retry max attempts must be positive")
	ErrInvalidSessionTTL     = errors.New("session ttl must be positive")
)

// Config is the complete runtime configuration.
type Config struct {
	StorageDriver      string `env:"EVENTHUB_STORAGE_DRIVER" envDefault:"sqlite"`
	SQLitePath         string `env:"EVENTHUB_SQLITE_PATH" envDefault:"eventhub.db"`
	PostgresDSN        string `env:"EVENTHUB_POSTGRES_DSN"`
	PostgresReplicaDSN string `env:"EVENTHUB_POSTGRES_REPLICA_DSN"`
	PostgresClient     string `env:"EVENTHUB_POSTGRES_CLIENT" envDefault:"pgx"`

	TicketPrice int `env:"EVENTHUB_TICKET_PRICE" envDefault:"49"`
	FeePercent  int `env:"EVENTHUB_FEE_PERCENT" envDefault:"10"`

	// SessionSecret signs session tokens. If it is empty, a random secret is generated on Open and
	// tokens do not survive a restart.
	SessionSecret string        `env:"EVENTHUB_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"EVENTHUB_SESSION_TTL" envDefault:"24h"`
	BcryptCost    int           `env:"EVENTHUB_BCRYPT_COST" envDefault:"10"`

	LogLevel         string `env:"EVENTHUB_LOG_LEVEL" envDefault:"info"`
	RetryMaxAttempts int    `env:"EVENTHUB_RETRY_MAX_ATTEMPTS" envDefault:"6"`
}

// FromEnv parses and validates the configuration from the process environment.
func FromEnv() (Config, error) {
	cfg := Config{}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default returns the configuration with every variable unset.
func Default() Config {
	cfg := Config{}

	// Parsing the defaults of an empty environment cannot fail.
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})

	return cfg
}

// Validate checks the combinations env tags cannot express.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverSQLite:
		if c.SQLitePath == "" {
			return ErrMissingSQLitePath
		}

	case StorageDriverPostgres:
		if c.PostgresDSN == "" {
			return ErrMissingPostgresDSN
		}

		switch c.PostgresClient {
		case PostgresClientPGX, PostgresClientSQLDB, PostgresClientSQLX:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownPostgresClient, c.PostgresClient)
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, c.StorageDriver)
	}

	if c.TicketPrice < 0 || c.TicketPrice > MaxTicketPrice || c.FeePercent < 0 || c.FeePercent > MaxFeePercent {
		return ErrInvalidPricing
	}

	if c.RetryMaxAttempts < 1 {
		return ErrInvalidRetryAttempts
	}

	if c.SessionTTL <= 0 {
		return ErrInvalidSessionTTL
	}

	return nil
}

// Pricing bounds. Together with the capacity bound of events they keep quotes within int range.
const (
	MaxTicketPrice = 1_000_000
	MaxFeePercent  = 100
)

// SlogLevel falls back to info for unknown levels.
func (c Config) SlogLevel() slog.Level {
	level := slog.LevelInfo

	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}
