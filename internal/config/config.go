package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	MDX      MDXConfig      `yaml:"mdx"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// MDXConfig holds MDX lookup server settings.
type MDXConfig struct {
	BaseURL      string        `yaml:"base_url"      env:"MDX_BASE_URL"      env-default:"http://localhost:8000"`
	Timeout      time.Duration `yaml:"timeout"       env:"MDX_TIMEOUT"       env-default:"30s"`
	CheckTimeout time.Duration `yaml:"check_timeout" env:"MDX_CHECK_TIMEOUT" env-default:"15s"`
}

// DatabaseConfig holds connection settings for the vocabulary service
// database. Only needed when words are sourced with -vocab-db.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Validate checks settings that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.MDX.BaseURL == "" {
		return fmt.Errorf("mdx.base_url must not be empty")
	}
	if c.MDX.Timeout <= 0 {
		return fmt.Errorf("mdx.timeout must be positive")
	}
	return nil
}
