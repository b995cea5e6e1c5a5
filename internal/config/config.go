package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Experiment ExperimentConfig `yaml:"experiment"`
	Sessions   SessionsConfig   `yaml:"sessions"`
	Admin      AdminConfig      `yaml:"admin"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RateLimitPerMinute caps registration and admin login requests per client IP.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrate     bool          `yaml:"skip_migrate"       env:"DATABASE_SKIP_MIGRATE"       env-default:"false"`
}

// AuthConfig holds token settings for participants and administrators.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer         string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"lexical-decision"`
	ParticipantTTL    time.Duration `yaml:"participant_ttl"     env:"AUTH_PARTICIPANT_TTL"     env-default:"720h"`
	AdminTTL          time.Duration `yaml:"admin_ttl"           env:"AUTH_ADMIN_TTL"           env-default:"1h"`
	AdminPasswordHash string        `yaml:"admin_password_hash" env:"AUTH_ADMIN_PASSWORD_HASH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"10"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"7"`
	Compress   bool   `yaml:"compress"     env:"LOG_COMPRESS"     env-default:"false"`
}

// CatalogConfig describes where the stimulus table lives and how rows map to images.
type CatalogConfig struct {
	Source       string        `yaml:"source"         env:"CATALOG_SOURCE"         env-default:"./stimuli.tsv"`
	ImageBaseURL string        `yaml:"image_base_url" env:"CATALOG_IMAGE_BASE_URL" env-default:"/images"`
	ZeroBased    bool          `yaml:"zero_based"     env:"CATALOG_ZERO_BASED"     env-default:"false"`
	HasHeader    bool          `yaml:"has_header"     env:"CATALOG_HAS_HEADER"     env-default:"false"`
	Strict       bool          `yaml:"strict"         env:"CATALOG_STRICT"         env-default:"false"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"  env:"CATALOG_FETCH_TIMEOUT"  env-default:"10s"`
}

// IsRemote reports whether Source is an http(s) URL.
func (c CatalogConfig) IsRemote() bool {
	return strings.HasPrefix(c.Source, "http://") || strings.HasPrefix(c.Source, "https://")
}

// FirstIndex is the image file number of the first data row. Rows map to
// 1.png, 2.png, ... unless ZeroBased is set.
func (c CatalogConfig) FirstIndex() int {
	if c.ZeroBased {
		return 0
	}
	return 1
}

// ExperimentConfig holds session assembly parameters.
type ExperimentConfig struct {
	PairsPerSession       int `yaml:"pairs_per_session"       env:"EXPERIMENT_PAIRS_PER_SESSION"       env-default:"3"`
	NonWordsPerImage      int `yaml:"non_words_per_image"     env:"EXPERIMENT_NON_WORDS_PER_IMAGE"     env-default:"20"`
	MaxGenerationAttempts int `yaml:"max_generation_attempts" env:"EXPERIMENT_MAX_GENERATION_ATTEMPTS" env-default:"50"`
}

// SessionsConfig bounds the in-process registry of active sessions.
type SessionsConfig struct {
	CacheSize int           `yaml:"cache_size" env:"SESSIONS_CACHE_SIZE" env-default:"10000"`
	TTL       time.Duration `yaml:"ttl"        env:"SESSIONS_TTL"        env-default:"2h"`
}

// AdminConfig holds maintenance settings.
type AdminConfig struct {
	DeleteBatchSize int `yaml:"delete_batch_size" env:"ADMIN_DELETE_BATCH_SIZE" env-default:"450"`
	RecalcPageSize  int `yaml:"recalc_page_size"  env:"ADMIN_RECALC_PAGE_SIZE"  env-default:"450"`
}
