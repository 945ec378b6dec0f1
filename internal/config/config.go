// Package config loads application configuration from the environment.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
}

// DatabaseConfig holds PostgreSQL connection settings for the movie catalog.
type DatabaseConfig struct {
	DSN             string        `env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds connection settings for the analytics log store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"     env-default:"127.0.0.1:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"       env-default:"0"`
}

// LogConfig holds operational logging settings. File defaults to log.txt
// next to the binary; an empty value sends logs to stderr.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
	File   string `env:"LOG_FILE"   env-default:"log.txt"`
}
