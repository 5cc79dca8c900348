package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig читает .env (если есть), переменные окружения и значения по умолчанию.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "password")
	v.SetDefault("postgres.db_name", "pr_metrics")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.max_open_conns", 20)

	v.SetDefault("redis.addr", "")
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("cache.prefix", "prm:agg")

	v.SetDefault("github.base_url", "")
	v.SetDefault("github.rps", 10.0)
	v.SetDefault("github.max_retries", 5)
	v.SetDefault("github.per_page", 100)
	v.SetDefault("github.retry_base_delay", time.Second)
	v.SetDefault("github.retry_max_wait", 2*time.Minute)

	v.SetDefault("sync.interval", time.Hour)
	v.SetDefault("sync.start_delay", time.Minute)
	v.SetDefault("sync.staleness_threshold", 7*24*time.Hour)
	v.SetDefault("sync.lookback_days", 60)
	v.SetDefault("sync.rework_counts_check_failures", true)
	v.SetDefault("sync.fetch_concurrency", 4)

	v.SetDefault("domains.allowed", []string{
		"enterprise_wiki",
		"finance",
		"fund_finance",
		"hr_experts",
		"hr_management",
		"hr_payroll",
		"incident_management",
		"it_incident_management",
		"smart_home",
	})

	v.SetDefault("labels.delivery_ready", []string{"ready to merge", "delivery ready", "expert approved"})
	v.SetDefault("labels.rejected", "rejected")
	v.SetDefault("labels.complexity_tiers", []string{"expert", "hard", "medium"})

	v.SetDefault("notify.buffer_size", 16)
	v.SetDefault("notify.ping_interval", 30*time.Second)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"server.cors_origins",
		"postgres.host",
		"postgres.port",
		"postgres.user",
		"postgres.password",
		"postgres.db_name",
		"postgres.ssl_mode",
		"postgres.max_open_conns",
		"redis.addr",
		"cache.ttl",
		"cache.prefix",
		"github.token",
		"github.repo",
		"github.base_url",
		"github.rps",
		"github.max_retries",
		"github.per_page",
		"github.retry_base_delay",
		"github.retry_max_wait",
		"sync.interval",
		"sync.start_delay",
		"sync.staleness_threshold",
		"sync.lookback_days",
		"sync.rework_counts_check_failures",
		"sync.fetch_concurrency",
		"domains.allowed",
		"labels.delivery_ready",
		"labels.rejected",
		"labels.complexity_tiers",
		"notify.buffer_size",
		"notify.ping_interval",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
