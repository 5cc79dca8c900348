package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config описывает все настройки приложения.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	GitHub   GitHubConfig   `mapstructure:"github"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Domains  DomainsConfig  `mapstructure:"domains"`
	Labels   LabelsConfig   `mapstructure:"labels"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate проверяет обязательные поля.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
		return errors.New("postgres credentials are required")
	}
	if c.Postgres.Host == "" {
		return errors.New("postgres.host is required")
	}
	if c.GitHub.Token == "" {
		return errors.New("github.token is required")
	}
	if _, _, err := c.GitHub.OwnerRepo(); err != nil {
		return err
	}
	if c.Sync.LookbackDays <= 0 {
		return errors.New("sync.lookback_days must be positive")
	}
	if c.Sync.Interval <= 0 {
		return errors.New("sync.interval must be positive")
	}
	if len(c.Domains.Allowed) == 0 {
		return errors.New("domains.allowed must not be empty")
	}
	return nil
}

// ServerAddr возвращает host:port для HTTP сервера.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

type PostgresConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"db_name"`
	SSLMode      string `mapstructure:"ssl_mode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// DSN возвращает строку подключения к Postgres.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode,
	)
}

// RedisConfig: пустой Addr отключает кэш агрегатов.
type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type CacheConfig struct {
	TTL    time.Duration `mapstructure:"ttl"`
	Prefix string        `mapstructure:"prefix"`
}

type GitHubConfig struct {
	Token          string        `mapstructure:"token"`
	Repo           string        `mapstructure:"repo"`
	BaseURL        string        `mapstructure:"base_url"`
	RPS            float64       `mapstructure:"rps"`
	MaxRetries     int           `mapstructure:"max_retries"`
	PerPage        int           `mapstructure:"per_page"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay"`
	RetryMaxWait   time.Duration `mapstructure:"retry_max_wait"`
}

// OwnerRepo разбирает github.repo в формате owner/name.
func (g GitHubConfig) OwnerRepo() (string, string, error) {
	owner, name, ok := strings.Cut(g.Repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("github.repo must be owner/name, got %q", g.Repo)
	}
	return owner, name, nil
}

type SyncConfig struct {
	Interval                  time.Duration `mapstructure:"interval"`
	StartDelay                time.Duration `mapstructure:"start_delay"`
	StalenessThreshold        time.Duration `mapstructure:"staleness_threshold"`
	LookbackDays              int           `mapstructure:"lookback_days"`
	ReworkCountsCheckFailures bool          `mapstructure:"rework_counts_check_failures"`
	FetchConcurrency          int           `mapstructure:"fetch_concurrency"`
}

type DomainsConfig struct {
	Allowed []string `mapstructure:"allowed"`
}

type LabelsConfig struct {
	DeliveryReady   []string `mapstructure:"delivery_ready"`
	Rejected        string   `mapstructure:"rejected"`
	ComplexityTiers []string `mapstructure:"complexity_tiers"`
}

type NotifyConfig struct {
	BufferSize   int           `mapstructure:"buffer_size"`
	PingInterval time.Duration `mapstructure:"ping_interval"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}
