package config

import (
	"strings"
	"time"
)

// Corpus sources.
const (
	SourceFiles    = "files"
	SourcePostgres = "postgres"
)

// Index build modes.
const (
	IndexQuick = "quick"
	IndexFull  = "full"
)

// Config is the root application configuration.
type Config struct {
	Corpus   CorpusConfig   `yaml:"corpus"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

// CorpusConfig selects where VerbNet documents come from and how they are indexed.
type CorpusConfig struct {
	Source              string `yaml:"source"               env:"CORPUS_SOURCE"               env-default:"files"`
	Root                string `yaml:"root"                 env:"CORPUS_ROOT"`
	FilePattern         string `yaml:"file_pattern"         env:"CORPUS_FILE_PATTERN"`
	IndexMode           string `yaml:"index_mode"           env:"CORPUS_INDEX_MODE"           env-default:"quick"`
	ExpandSubstructures bool   `yaml:"expand_substructures" env:"CORPUS_EXPAND_SUBSTRUCTURES" env-default:"false"`
	CacheSize           int    `yaml:"cache_size"           env:"CORPUS_CACHE_SIZE"           env-default:"256"`
}

// ExpandsSubstructures reports whether frames should be expanded. French
// VerbNet corpora (any root containing "verbenet") always are.
func (c CorpusConfig) ExpandsSubstructures() bool {
	return c.ExpandSubstructures || strings.Contains(c.Root, "verbenet")
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxFrames caps the frames returned by one request.
	MaxFrames int `yaml:"max_frames" env:"SERVER_MAX_FRAMES" env-default:"5000"`
	// FramesPerMinute limits frame requests per client. 0 disables the limit.
	FramesPerMinute int `yaml:"frames_per_minute" env:"SERVER_FRAMES_PER_MINUTE" env-default:"0"`
}

// CORSConfig holds Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
