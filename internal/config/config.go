package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root service configuration.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

// AppConfig holds HTTP server and logging settings.
type AppConfig struct {
	Host            string        `env:"APP_HOST"             env-default:"localhost"`
	Port            int           `env:"APP_PORT"             env-default:"8080"`
	LogLevel        string        `env:"APP_LOG_LEVEL"        env-default:"info"`
	ReadTimeout     time.Duration `env:"APP_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `env:"APP_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" env-default:"10s"`
	InitSchema      bool          `env:"APP_INIT_SCHEMA"      env-default:"false"`
}

// Addr returns the listen address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PostgresConfig holds database connection settings.
type PostgresConfig struct {
	Host         string `env:"POSTGRES_HOST"           env-default:"localhost"`
	Port         int    `env:"POSTGRES_PORT"           env-default:"5432"`
	User         string `env:"POSTGRES_USER"           env-default:"user"`
	Password     string `env:"POSTGRES_PASSWORD"       env-default:"password"`
	DB           string `env:"POSTGRES_DB"             env-default:"database"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"8"`
}

// DSN returns the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

// JWTConfig holds the shared secret used to verify bearer tokens.
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY" env-default:"my_super_secret_key"`
}

// RedisConfig holds the optional record cache settings.
type RedisConfig struct {
	Enabled      bool          `env:"REDIS_ENABLED"        env-default:"false"`
	Host         string        `env:"REDIS_HOST"           env-default:"localhost"`
	Port         int           `env:"REDIS_PORT"           env-default:"6379"`
	DB           int           `env:"REDIS_DB"             env-default:"0"`
	Password     string        `env:"REDIS_PASSWORD"`
	PoolSize     int           `env:"REDIS_POOL_SIZE"      env-default:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
	TTL          time.Duration `env:"REDIS_TTL"            env-default:"60s"`
}

// Addr returns the Redis address.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KafkaConfig holds the optional change event settings.
// Events are disabled when no brokers are configured.
type KafkaConfig struct {
	Brokers      []string      `env:"KAFKA_BROKERS"       env-separator:","`
	Topic        string        `env:"KAFKA_TOPIC"         env-default:"entity-events"`
	BatchTimeout time.Duration `env:"KAFKA_BATCH_TIMEOUT" env-default:"10ms"`
}

// Enabled reports whether change events should be published.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// Load reads the dotenv file at path into the environment and fills Config from it.
// Variables already set in the environment win over the file. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that cannot be expressed with defaults.
func (c *Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return errors.New("JWT_SECRET_KEY must not be empty")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT out of range: %d", c.App.Port)
	}
	if c.Redis.Enabled && c.Redis.TTL <= 0 {
		return fmt.Errorf("REDIS_TTL must be positive when the cache is enabled (got %s)", c.Redis.TTL)
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC must be set when KAFKA_BROKERS is configured")
	}
	if c.Kafka.Enabled() && c.Kafka.BatchTimeout <= 0 {
		return fmt.Errorf("KAFKA_BATCH_TIMEOUT must be positive (got %s)", c.Kafka.BatchTimeout)
	}
	return nil
}
