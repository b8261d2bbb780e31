package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Auth modes
const (
	AuthModeOIDC = "oidc"
	AuthModeHMAC = "hmac"
)

// Feed overlap policies
const (
	FeedOverlapSkip  = "skip"
	FeedOverlapAllow = "allow"
)

type (
	// Config holds every setting of the server and the CLI.
	Config struct {
		App      AppConfig      `envPrefix:"APP_"`
		Postgres PostgresConfig `envPrefix:"POSTGRES_"`
		Auth     AuthConfig     `envPrefix:"AUTH_"`
		Redis    RedisConfig    `envPrefix:"REDIS_"`
		Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
		S3       S3Config       `envPrefix:"S3_"`
		Upload   UploadConfig   `envPrefix:"UPLOAD_"`
		GenAI    GenAIConfig    `envPrefix:"GENAI_"`
		Feed     FeedConfig     `envPrefix:"FEED_"`
	}

	AppConfig struct {
		Host     string `env:"HOST" envDefault:"localhost"`
		Port     string `env:"PORT" envDefault:"8080"`
		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
		BaseURL  string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	}

	PostgresConfig struct {
		Host            string        `env:"HOST" envDefault:"localhost"`
		Port            int           `env:"PORT" envDefault:"5432"`
		User            string        `env:"USER" envDefault:"user"`
		Password        string        `env:"PASSWORD" envDefault:"password"`
		DB              string        `env:"DB" envDefault:"phixelforge"`
		MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"16"`
		MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"8"`
		ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"5m"`
	}

	AuthConfig struct {
		Mode       string        `env:"MODE" envDefault:"hmac"`
		ProjectID  string        `env:"PROJECT_ID"`
		Issuer     string        `env:"ISSUER"`
		HMACSecret string        `env:"HMAC_SECRET" envDefault:"dev_secret_key"`
		TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	}

	RedisConfig struct {
		Host     string `env:"HOST" envDefault:"localhost"`
		Port     int    `env:"PORT" envDefault:"6379"`
		DB       int    `env:"DB" envDefault:"0"`
		Password string `env:"PASSWORD"`
		PoolSize int    `env:"POOL_SIZE" envDefault:"10"`
	}

	KafkaConfig struct {
		Brokers []string `env:"BROKERS" envSeparator:","`
		Topic   string   `env:"TOPIC" envDefault:"phixelforge.activity"`
	}

	S3Config struct {
		Endpoint  string `env:"ENDPOINT"`
		AccessKey string `env:"ACCESS_KEY"`
		SecretKey string `env:"SECRET_KEY"`
		Bucket    string `env:"BUCKET" envDefault:"phixelforge"`
		UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
		PublicURL string `env:"PUBLIC_URL"`
	}

	UploadConfig struct {
		MaxBytes int64 `env:"MAX_BYTES" envDefault:"10485760"`
	}

	GenAIConfig struct {
		BaseURL string        `env:"BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
		APIKey  string        `env:"API_KEY"`
		Model   string        `env:"MODEL" envDefault:"imagen-4.0-fast-generate-001"`
		Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
	}

	FeedConfig struct {
		Interval time.Duration `env:"INTERVAL" envDefault:"5s"`
		Overlap  string        `env:"OVERLAP" envDefault:"skip"`
	}
)

// Load reads the env file at path, if present, and parses the environment into a Config.
// Variables already set in the environment take precedence over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Auth.Mode {
	case AuthModeOIDC:
		if c.Auth.ProjectID == "" {
			return fmt.Errorf("AUTH_PROJECT_ID is required when AUTH_MODE=%s", AuthModeOIDC)
		}
	case AuthModeHMAC:
	default:
		return fmt.Errorf("unknown AUTH_MODE %q", c.Auth.Mode)
	}

	switch c.Feed.Overlap {
	case FeedOverlapSkip, FeedOverlapAllow:
	default:
		return fmt.Errorf("unknown FEED_OVERLAP %q", c.Feed.Overlap)
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

// Addr returns the Redis host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Addr returns the HTTP listen address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
