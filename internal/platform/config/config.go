// Package config loads runtime settings from defaults, an optional YAML
// file, a .env file and the environment, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	strutil "holocron/pkg/platform/strings"
)

const (
	DefaultPort        = "3000"
	DefaultSQLitePath  = "/tmp/test.db"
	DefaultAuditTopic  = "holocron.audit"
	DefaultCORSOrigin  = "*"
	defaultShutdown    = 10 * time.Second
	defaultRateLimit   = 100
	defaultRateWindow  = time.Minute
	defaultRedisPool   = 10
	defaultRedisIdle   = 2
	defaultRedisDialTO = 5 * time.Second
	defaultRedisIOTO   = 3 * time.Second
)

// Config is the fully resolved process configuration.
type Config struct {
	Server          Server
	Database        DatabaseConfig
	Redis           RedisConfig
	RateLimit       RateLimitConfig
	Kafka           KafkaConfig
	Favorites       FavoritesConfig
	Admin           AdminConfig
	CORS            CORSConfig
	Log             LogConfig
	ShutdownTimeout time.Duration
	// File is the config file that was read, if any.
	File string
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr string
}

type DatabaseConfig struct {
	// URL selects the backend: postgres:// or postgresql:// for PostgreSQL,
	// memory:// for the in-process store, anything else is a SQLite path.
	URL          string
	MaxOpenConns int
}

// RedisConfig is empty (URL == "") when Redis is not used.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// Enabled reports whether audit events should also be sent to Kafka.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type FavoritesConfig struct {
	// Grouped returns favorites as {"people": [...], "planets": [...]}
	// instead of the legacy flattened array.
	Grouped bool
}

type CORSConfig struct {
	// AllowedOrigins may contain "*" to allow every origin.
	AllowedOrigins []string
}

type AdminConfig struct {
	Token string
}

type LogConfig struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", "")
	v.SetDefault("port", DefaultPort)
	v.SetDefault("database_url", DefaultSQLitePath)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("redis_url", "")
	v.SetDefault("redis.pool_size", defaultRedisPool)
	v.SetDefault("redis.min_idle_conns", defaultRedisIdle)
	v.SetDefault("redis.dial_timeout", defaultRedisDialTO)
	v.SetDefault("redis.read_timeout", defaultRedisIOTO)
	v.SetDefault("redis.write_timeout", defaultRedisIOTO)
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests", defaultRateLimit)
	v.SetDefault("rate_limit.window", defaultRateWindow)
	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.audit_topic", DefaultAuditTopic)
	v.SetDefault("favorites.grouped", false)
	v.SetDefault("admin.token", "")
	v.SetDefault("cors.allowed_origins", DefaultCORSOrigin)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("shutdown_timeout", defaultShutdown)
}

// Load resolves configuration. path may be empty; a named file that cannot
// be read is an error. A missing .env file is not.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	addr := v.GetString("addr")
	if addr == "" {
		addr = ":" + v.GetString("port")
	}

	var brokers []string
	for _, entry := range v.GetStringSlice("kafka.brokers") {
		brokers = append(brokers, strutil.SplitList(entry, ",")...)
	}

	var origins []string
	for _, entry := range v.GetStringSlice("cors.allowed_origins") {
		origins = append(origins, strutil.SplitList(entry, ",")...)
	}

	return &Config{
		Server: Server{Addr: addr},
		Database: DatabaseConfig{
			URL:          v.GetString("database_url"),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
		},
		Redis: RedisConfig{
			URL:          v.GetString("redis_url"),
			PoolSize:     v.GetInt("redis.pool_size"),
			MinIdleConns: v.GetInt("redis.min_idle_conns"),
			DialTimeout:  v.GetDuration("redis.dial_timeout"),
			ReadTimeout:  v.GetDuration("redis.read_timeout"),
			WriteTimeout: v.GetDuration("redis.write_timeout"),
		},
		RateLimit: RateLimitConfig{
			Enabled:  v.GetBool("rate_limit.enabled"),
			Requests: v.GetInt("rate_limit.requests"),
			Window:   v.GetDuration("rate_limit.window"),
		},
		Kafka: KafkaConfig{
			Brokers:    strutil.DedupeAndTrim(brokers),
			AuditTopic: v.GetString("kafka.audit_topic"),
		},
		Favorites:       FavoritesConfig{Grouped: v.GetBool("favorites.grouped")},
		Admin:           AdminConfig{Token: v.GetString("admin.token")},
		CORS:            CORSConfig{AllowedOrigins: strutil.DedupeAndTrim(origins)},
		Log:             LogConfig{Level: v.GetString("log.level"), Format: v.GetString("log.format")},
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		File:            v.ConfigFileUsed(),
	}
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" || c.Server.Addr == ":" {
		errs = append(errs, errors.New("addr or port must be set"))
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Requests <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit.requests must be positive, got %d", c.RateLimit.Requests))
		}
		if c.RateLimit.Window <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit.window must be positive, got %s", c.RateLimit.Window))
		}
	}
	if c.Kafka.Enabled() && c.Kafka.AuditTopic == "" {
		errs = append(errs, errors.New("kafka.audit_topic is required when kafka.brokers is set"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown_timeout must be positive"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
